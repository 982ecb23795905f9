package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wgonzales/catalogd/internal/catalog"
)

// CatalogCollector implements prometheus.Collector for dataset stats.
// It reads the immutable catalog lazily on each Prometheus scrape rather
// than maintaining duplicate state.
type CatalogCollector struct {
	cat *catalog.Catalog

	rows         *prometheus.Desc
	skippedRows  *prometheus.Desc
	optionCounts *prometheus.Desc
	yearBound    *prometheus.Desc
}

// NewCatalogCollector creates a collector over a loaded catalog.
func NewCatalogCollector(cat *catalog.Catalog) *CatalogCollector {
	return &CatalogCollector{
		cat: cat,

		rows: prometheus.NewDesc(
			"catalogd_dataset_rows",
			"Number of title rows in the loaded catalog.",
			nil, nil,
		),
		skippedRows: prometheus.NewDesc(
			"catalogd_dataset_skipped_rows",
			"Rows dropped at load time due to a malformed release_year.",
			nil, nil,
		),
		optionCounts: prometheus.NewDesc(
			"catalogd_dataset_option_values",
			"Distinct values available per filter dimension.",
			[]string{"dimension"}, nil,
		),
		yearBound: prometheus.NewDesc(
			"catalogd_dataset_release_year",
			"Release year bounds of the catalog.",
			[]string{"bound"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rows
	ch <- c.skippedRows
	ch <- c.optionCounts
	ch <- c.yearBound
}

// Collect implements prometheus.Collector.
func (c *CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.rows, prometheus.GaugeValue, float64(c.cat.Len()))
	ch <- prometheus.MustNewConstMetric(c.skippedRows, prometheus.GaugeValue, float64(c.cat.Skipped))

	ch <- prometheus.MustNewConstMetric(c.optionCounts, prometheus.GaugeValue, float64(len(c.cat.Types())), "type")
	ch <- prometheus.MustNewConstMetric(c.optionCounts, prometheus.GaugeValue, float64(len(c.cat.Countries())), "country")
	ch <- prometheus.MustNewConstMetric(c.optionCounts, prometheus.GaugeValue, float64(len(c.cat.Genres())), "genre")
	ch <- prometheus.MustNewConstMetric(c.optionCounts, prometheus.GaugeValue, float64(len(c.cat.Ratings())), "rating")

	min, max := c.cat.YearBounds()
	ch <- prometheus.MustNewConstMetric(c.yearBound, prometheus.GaugeValue, float64(min), "min")
	ch <- prometheus.MustNewConstMetric(c.yearBound, prometheus.GaugeValue, float64(max), "max")
}
