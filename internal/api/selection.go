package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wgonzales/catalogd/internal/catalog"
	"github.com/wgonzales/catalogd/internal/explore"
)

// parseSelection builds the filter selection from query parameters.
// Multi-valued filters use repeated params (type, country, genre, rating);
// year_from/year_to default to the catalog's year bounds, mirroring a slider
// that always has concrete endpoints.
func (s *Server) parseSelection(c *gin.Context) (explore.Selection, error) {
	sel := explore.Selection{
		Types:     c.QueryArray("type"),
		Countries: c.QueryArray("country"),
		Genres:    c.QueryArray("genre"),
		Ratings:   c.QueryArray("rating"),
	}

	sel.YearFrom, sel.YearTo = s.cat.YearBounds()

	var err error
	if sel.YearFrom, err = yearParam(c, "year_from", sel.YearFrom); err != nil {
		return sel, err
	}
	if sel.YearTo, err = yearParam(c, "year_to", sel.YearTo); err != nil {
		return sel, err
	}

	return sel, nil
}

func yearParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return year, nil
}

// recompute runs the filter pass over the cached catalog and records
// instrumentation when metrics are configured.
func (s *Server) recompute(sel explore.Selection) []catalog.Title {
	start := time.Now()
	rows := explore.Filter(s.cat.Titles, sel)

	if s.metrics != nil {
		s.metrics.FilterRequests.Inc()
		s.metrics.FilterDuration.Observe(time.Since(start).Seconds())
		s.metrics.FilterResultRows.Observe(float64(len(rows)))
	}

	return rows
}
