package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wgonzales/catalogd/internal/catalog"
	"github.com/wgonzales/catalogd/internal/explore"
	"github.com/wgonzales/catalogd/internal/metrics"
	"github.com/wgonzales/catalogd/internal/views"
)

// Options tunes the aggregates served by the API.
type Options struct {
	TopCountries  int
	PreviewRows   int
	HistogramBins int
}

// Server represents the REST API server
type Server struct {
	router *gin.Engine
	cat    *catalog.Catalog
	opts   Options

	viewStore *views.Store     // Optional: saved-view endpoints return 503 when nil
	metrics   *metrics.Metrics // Optional: nil disables instrumentation
}

// NewServer creates a new API server over a loaded catalog.
func NewServer(cat *catalog.Catalog, opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	if opts.TopCountries <= 0 {
		opts.TopCountries = 10
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 10
	}
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = 30
	}

	s := &Server{
		router: gin.New(),
		cat:    cat,
		opts:   opts,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// SetViewStore configures saved-view support
func (s *Server) SetViewStore(store *views.Store) {
	s.viewStore = store
	slog.Info("Saved-view store configured")
}

// SetMetrics configures request instrumentation
func (s *Server) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.router.Use(gin.Recovery())

	// Logging middleware
	s.router.Use(func(c *gin.Context) {
		c.Next()
		slog.Info("API request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	})

	// CORS for development
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	// Dataset
	api.GET("/status", s.getStatus)
	api.GET("/options", s.getOptions)

	// Filtered views
	api.GET("/summary", s.getSummary)
	api.GET("/charts", s.getCharts)
	api.GET("/charts/:name", s.getChart)
	api.GET("/charts/:name/png", s.getChartPNG)

	// Saved views
	api.GET("/views", s.listViews)
	api.POST("/views", s.createView)
	api.GET("/views/:name", s.getView)
	api.DELETE("/views/:name", s.deleteView)
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// filtered runs one recompute pass: parse the selection, filter the cached
// catalog, record metrics. Returns false after writing an error response.
func (s *Server) filtered(c *gin.Context) ([]catalog.Title, explore.Selection, bool) {
	sel, err := s.parseSelection(c)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return nil, sel, false
	}

	rows := s.recompute(sel)
	return rows, sel, true
}

// Error response helper
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
