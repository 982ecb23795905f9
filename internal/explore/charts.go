package explore

import (
	"sort"
	"strconv"

	"github.com/wgonzales/catalogd/internal/catalog"
)

// Chart is one render-ready dashboard chart: labeled points plus the fixed
// insight sentence shown under it.
type Chart struct {
	Name    string       `json:"name"` // stable identifier, used in API routes
	Kind    string       `json:"kind"` // "bar", "hbar", "line" or "histogram"
	Title   string       `json:"title"`
	XLabel  string       `json:"x_label,omitempty"`
	YLabel  string       `json:"y_label,omitempty"`
	Points  []ChartPoint `json:"points"`
	Insight string       `json:"insight"`
}

// ChartPoint is a single labeled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Chart identifiers, in dashboard order.
const (
	ChartTypeCounts   = "type_counts"
	ChartTitlesByYear = "titles_by_year"
	ChartTopCountries = "top_countries"
	ChartRatings      = "rating_distribution"
	ChartDurations    = "movie_durations"
	ChartSeasons      = "tv_seasons"
)

// BuildCharts assembles the six dashboard charts from a filtered table.
// The movie-duration and tv-season charts are omitted when their input is
// empty; the others render with zero points rather than failing.
func BuildCharts(rows []catalog.Title, topK, bins int) []Chart {
	charts := []Chart{
		buildTypeCounts(rows),
		buildTitlesByYear(rows),
		buildTopCountries(rows, topK),
		buildRatings(rows),
	}
	if c, ok := buildDurations(rows, bins); ok {
		charts = append(charts, c)
	}
	if c, ok := buildSeasons(rows); ok {
		charts = append(charts, c)
	}
	return charts
}

// BuildChart assembles a single chart by name. The second return is false
// for an unknown name or a conditionally omitted chart.
func BuildChart(name string, rows []catalog.Title, topK, bins int) (Chart, bool) {
	switch name {
	case ChartTypeCounts:
		return buildTypeCounts(rows), true
	case ChartTitlesByYear:
		return buildTitlesByYear(rows), true
	case ChartTopCountries:
		return buildTopCountries(rows, topK), true
	case ChartRatings:
		return buildRatings(rows), true
	case ChartDurations:
		return buildDurations(rows, bins)
	case ChartSeasons:
		return buildSeasons(rows)
	}
	return Chart{}, false
}

func buildTypeCounts(rows []catalog.Title) Chart {
	counts := CountByType(rows)

	// Bars in first-seen order, matching the reference dashboard.
	var points []ChartPoint
	seen := make(map[string]bool)
	for _, t := range rows {
		if seen[t.Type] {
			continue
		}
		seen[t.Type] = true
		points = append(points, ChartPoint{Label: t.Type, Value: float64(counts[t.Type])})
	}

	return Chart{
		Name:    ChartTypeCounts,
		Kind:    "bar",
		Title:   "Number of Titles by Type",
		XLabel:  "Type",
		YLabel:  "Count",
		Points:  points,
		Insight: "Netflix's catalog is predominantly composed of movies, reflecting a content strategy focused on one-off productions.",
	}
}

func buildTitlesByYear(rows []catalog.Title) Chart {
	series := CountByYear(rows)
	points := make([]ChartPoint, 0, len(series))
	for _, yc := range series {
		points = append(points, ChartPoint{Label: strconv.Itoa(yc.Year), Value: float64(yc.Count)})
	}

	return Chart{
		Name:    ChartTitlesByYear,
		Kind:    "line",
		Title:   "Titles Released per Year",
		XLabel:  "Year",
		YLabel:  "Count",
		Points:  points,
		Insight: "There was steady growth in releases until 2019, with a slight drop in 2020 likely due to COVID-19 production delays.",
	}
}

func buildTopCountries(rows []catalog.Title, k int) Chart {
	top := TopCountries(rows, k)
	points := make([]ChartPoint, 0, len(top))
	for _, tc := range top {
		points = append(points, ChartPoint{Label: tc.Token, Value: float64(tc.Count)})
	}

	return Chart{
		Name:    ChartTopCountries,
		Kind:    "hbar",
		Title:   "Top Countries by Content Count",
		XLabel:  "Count",
		Points:  points,
		Insight: "The United States dominates Netflix's content library, but India and the UK are also major contributors.",
	}
}

func buildRatings(rows []catalog.Title) Chart {
	dist := RatingDistribution(rows)
	points := make([]ChartPoint, 0, len(dist))
	for _, tc := range dist {
		points = append(points, ChartPoint{Label: tc.Token, Value: float64(tc.Count)})
	}

	return Chart{
		Name:    ChartRatings,
		Kind:    "hbar",
		Title:   "Rating Distribution",
		XLabel:  "Count",
		Points:  points,
		Insight: "TV-MA and TV-14 are the most common ratings, indicating content is mainly aimed at teens and adults.",
	}
}

func buildDurations(rows []catalog.Title, bins int) (Chart, bool) {
	durations := MovieDurations(rows)
	if len(durations) == 0 {
		return Chart{}, false
	}

	return Chart{
		Name:    ChartDurations,
		Kind:    "histogram",
		Title:   "Distribution of Movie Durations",
		XLabel:  "Minutes",
		YLabel:  "Count",
		Points:  histogram(durations, bins),
		Insight: "Most movies are between 80-120 minutes long, which aligns with standard feature film lengths.",
	}, true
}

func buildSeasons(rows []catalog.Title) (Chart, bool) {
	counts := TVSeasonCounts(rows)
	if len(counts) == 0 {
		return Chart{}, false
	}

	seasons := make([]int, 0, len(counts))
	for s := range counts {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	points := make([]ChartPoint, 0, len(seasons))
	for _, s := range seasons {
		points = append(points, ChartPoint{Label: strconv.Itoa(s), Value: float64(counts[s])})
	}

	return Chart{
		Name:    ChartSeasons,
		Kind:    "bar",
		Title:   "Number of Seasons in TV Shows",
		XLabel:  "Seasons",
		YLabel:  "Count",
		Points:  points,
		Insight: "TV shows tend to have 1-2 seasons, showing Netflix's preference for limited series or experimental runs.",
	}, true
}

// histogram buckets values into equal-width bins labeled "lo-hi". A single
// distinct value collapses to one bin.
func histogram(values []int, bins int) []ChartPoint {
	if bins <= 0 {
		bins = 30
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []ChartPoint{{Label: strconv.Itoa(min), Value: float64(len(values))}}
	}

	width := float64(max-min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int(float64(v-min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	points := make([]ChartPoint, 0, bins)
	for i, n := range counts {
		lo := min + int(float64(i)*width)
		hi := min + int(float64(i+1)*width)
		points = append(points, ChartPoint{
			Label: strconv.Itoa(lo) + "-" + strconv.Itoa(hi),
			Value: float64(n),
		})
	}
	return points
}
