package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/wgonzales/catalogd/internal/explore"
)

// getChartPNG renders a single chart server-side for shells that want a
// ready-made plot instead of the JSON config.
func (s *Server) getChartPNG(c *gin.Context) {
	rows, _, ok := s.filtered(c)
	if !ok {
		return
	}

	name := c.Param("name")
	ch, ok := explore.BuildChart(name, rows, s.opts.TopCountries, s.opts.HistogramBins)
	if !ok {
		errorResponse(c, http.StatusNotFound, "Unknown or empty chart: "+name)
		return
	}
	if len(ch.Points) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	var err error
	if ch.Kind == "line" {
		err = renderLine(ch, &buf)
	} else {
		err = renderBars(ch, &buf)
	}
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to render chart: "+err.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.ChartRenders.WithLabelValues(ch.Name).Inc()
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// renderBars draws bar, hbar and histogram charts as a vertical bar plot.
func renderBars(ch explore.Chart, buf *bytes.Buffer) error {
	bars := make([]chart.Value, 0, len(ch.Points))
	for _, p := range ch.Points {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Value})
	}

	bc := chart.BarChart{
		Title:    ch.Title,
		Width:    1024,
		Height:   512,
		BarWidth: barWidth(len(bars)),
		Bars:     bars,
	}
	return bc.Render(chart.PNG, buf)
}

// renderLine draws the time-series chart. Labels are numeric years; a point
// with an unparseable label falls back to its position.
func renderLine(ch explore.Chart, buf *bytes.Buffer) error {
	xs := make([]float64, 0, len(ch.Points))
	ys := make([]float64, 0, len(ch.Points))
	for i, p := range ch.Points {
		x, err := strconv.ParseFloat(p.Label, 64)
		if err != nil {
			x = float64(i)
		}
		xs = append(xs, x)
		ys = append(ys, p.Value)
	}

	// go-chart needs at least two X values for a continuous series.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	lc := chart.Chart{
		Title:  ch.Title,
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: ch.XLabel},
		YAxis:  chart.YAxis{Name: ch.YLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: ch.Title, XValues: xs, YValues: ys},
		},
	}
	return lc.Render(chart.PNG, buf)
}

func barWidth(n int) int {
	if n <= 0 {
		return 40
	}
	w := 900 / n
	if w > 60 {
		w = 60
	}
	if w < 8 {
		w = 8
	}
	return w
}
