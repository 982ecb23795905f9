package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wgonzales/catalogd/internal/explore"
)

// Dataset response types
type StatusResponse struct {
	Source      string    `json:"source"`
	Rows        int       `json:"rows"`
	SkippedRows int       `json:"skipped_rows,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type OptionsResponse struct {
	Types     []string `json:"types"`
	Countries []string `json:"countries"`
	Genres    []string `json:"genres"`
	Ratings   []string `json:"ratings"`
	YearMin   int      `json:"year_min"`
	YearMax   int      `json:"year_max"`
}

type SummaryResponse struct {
	Count     int                  `json:"count"`
	Preview   explore.PreviewTable `json:"preview"`
	Selection explore.Selection    `json:"selection"`
}

type ChartsResponse struct {
	Count  int             `json:"count"`
	Charts []explore.Chart `json:"charts"`
}

// getStatus returns dataset provenance and size
func (s *Server) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Source:      s.cat.Source,
		Rows:        s.cat.Len(),
		SkippedRows: s.cat.Skipped,
		LoadedAt:    s.cat.LoadedAt,
	})
}

// getOptions returns the filter domains for sidebar population
func (s *Server) getOptions(c *gin.Context) {
	min, max := s.cat.YearBounds()
	c.JSON(http.StatusOK, OptionsResponse{
		Types:     s.cat.Types(),
		Countries: s.cat.Countries(),
		Genres:    s.cat.Genres(),
		Ratings:   s.cat.Ratings(),
		YearMin:   min,
		YearMax:   max,
	})
}

// getSummary returns the filtered row count and preview table
func (s *Server) getSummary(c *gin.Context) {
	rows, sel, ok := s.filtered(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Count:     len(rows),
		Preview:   explore.Preview(rows, s.opts.PreviewRows),
		Selection: sel,
	})
}

// getCharts returns all dashboard charts for the filtered view
func (s *Server) getCharts(c *gin.Context) {
	rows, _, ok := s.filtered(c)
	if !ok {
		return
	}

	charts := explore.BuildCharts(rows, s.opts.TopCountries, s.opts.HistogramBins)
	if s.metrics != nil {
		for _, chart := range charts {
			s.metrics.ChartRenders.WithLabelValues(chart.Name).Inc()
		}
	}

	c.JSON(http.StatusOK, ChartsResponse{
		Count:  len(rows),
		Charts: charts,
	})
}

// getChart returns a single chart by name
func (s *Server) getChart(c *gin.Context) {
	rows, _, ok := s.filtered(c)
	if !ok {
		return
	}

	name := c.Param("name")
	chart, ok := explore.BuildChart(name, rows, s.opts.TopCountries, s.opts.HistogramBins)
	if !ok {
		errorResponse(c, http.StatusNotFound, "Unknown or empty chart: "+name)
		return
	}

	if s.metrics != nil {
		s.metrics.ChartRenders.WithLabelValues(chart.Name).Inc()
	}

	c.JSON(http.StatusOK, chart)
}
