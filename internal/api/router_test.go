package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/wgonzales/catalogd/internal/catalog"
	"github.com/wgonzales/catalogd/internal/views"
)

const testCSV = `title,type,country,date_added,release_year,rating,duration,listed_in
Dark Waters,Movie,"United States, India","September 25, 2021",2015,PG-13,90 min,"Dramas, Thrillers"
Mumbai Diaries,TV Show,India,"June 1, 2019",2019,TV-MA,2 Seasons,"Dramas, International TV Shows"
Old Classic,Movie,France,,1995,PG,110 min,Classic Movies
`

func testServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	cat, err := catalog.Load(catalog.Source{Kind: "csv", Path: path})
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	return NewServer(cat, Options{})
}

func doJSON(t *testing.T, s *Server, method, url string, body []byte, out interface{}) int {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code
}

func TestGetOptions(t *testing.T) {
	s := testServer(t)

	var resp OptionsResponse
	if code := doJSON(t, s, http.MethodGet, "/api/options", nil, &resp); code != http.StatusOK {
		t.Fatalf("GET /api/options = %d", code)
	}

	if len(resp.Types) != 2 {
		t.Errorf("Types = %v", resp.Types)
	}
	if resp.YearMin != 1995 || resp.YearMax != 2019 {
		t.Errorf("year bounds = %d-%d, want 1995-2019", resp.YearMin, resp.YearMax)
	}
}

func TestGetSummaryFiltered(t *testing.T) {
	s := testServer(t)

	var resp SummaryResponse
	code := doJSON(t, s, http.MethodGet, "/api/summary?country=India&year_from=2010&year_to=2021", nil, &resp)
	if code != http.StatusOK {
		t.Fatalf("GET /api/summary = %d", code)
	}

	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if len(resp.Preview.Rows) != 2 {
		t.Errorf("preview has %d rows, want 2", len(resp.Preview.Rows))
	}
	if len(resp.Preview.Columns) != 6 {
		t.Errorf("preview has %d columns, want 6", len(resp.Preview.Columns))
	}
}

func TestGetSummaryDefaultsToYearBounds(t *testing.T) {
	s := testServer(t)

	var resp SummaryResponse
	if code := doJSON(t, s, http.MethodGet, "/api/summary", nil, &resp); code != http.StatusOK {
		t.Fatalf("GET /api/summary = %d", code)
	}
	if resp.Count != 3 {
		t.Errorf("Count = %d, want all 3 rows", resp.Count)
	}
	if resp.Selection.YearFrom != 1995 || resp.Selection.YearTo != 2019 {
		t.Errorf("selection years = %d-%d, want catalog bounds", resp.Selection.YearFrom, resp.Selection.YearTo)
	}
}

func TestGetSummaryInvalidYear(t *testing.T) {
	s := testServer(t)
	if code := doJSON(t, s, http.MethodGet, "/api/summary?year_from=abc", nil, nil); code != http.StatusBadRequest {
		t.Errorf("GET with bad year_from = %d, want 400", code)
	}
}

func TestGetCharts(t *testing.T) {
	s := testServer(t)

	var resp ChartsResponse
	if code := doJSON(t, s, http.MethodGet, "/api/charts", nil, &resp); code != http.StatusOK {
		t.Fatalf("GET /api/charts = %d", code)
	}
	if len(resp.Charts) != 6 {
		t.Errorf("got %d charts, want 6", len(resp.Charts))
	}
}

func TestGetChartsEmptyResultStillRenders(t *testing.T) {
	s := testServer(t)

	// Degenerate year range: zero rows is a valid, renderable state.
	var resp ChartsResponse
	code := doJSON(t, s, http.MethodGet, "/api/charts?year_from=2021&year_to=2010", nil, &resp)
	if code != http.StatusOK {
		t.Fatalf("GET /api/charts = %d", code)
	}
	if resp.Count != 0 {
		t.Errorf("Count = %d, want 0", resp.Count)
	}
	if len(resp.Charts) != 4 {
		t.Errorf("got %d charts, want 4 (conditional charts omitted)", len(resp.Charts))
	}
}

func TestGetChartUnknown(t *testing.T) {
	s := testServer(t)
	if code := doJSON(t, s, http.MethodGet, "/api/charts/nonsense", nil, nil); code != http.StatusNotFound {
		t.Errorf("GET unknown chart = %d, want 404", code)
	}
}

func TestGetChartPNG(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/type_counts/png", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET chart png = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty PNG body")
	}
}

func TestViewsUnavailableWithoutStore(t *testing.T) {
	s := testServer(t)
	if code := doJSON(t, s, http.MethodGet, "/api/views", nil, nil); code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/views without store = %d, want 503", code)
	}
}

func TestViewsRoundTrip(t *testing.T) {
	s := testServer(t)

	store, err := views.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open view store: %v", err)
	}
	defer store.Close()
	s.SetViewStore(store)

	body := []byte(`{"name":"indian-titles","selection":{"countries":["India"],"year_from":2010,"year_to":2021}}`)
	if code := doJSON(t, s, http.MethodPost, "/api/views", body, nil); code != http.StatusCreated {
		t.Fatalf("POST /api/views = %d", code)
	}

	var view ViewResponse
	if code := doJSON(t, s, http.MethodGet, "/api/views/indian-titles", nil, &view); code != http.StatusOK {
		t.Fatalf("GET /api/views/indian-titles = %d", code)
	}
	if len(view.Selection.Countries) != 1 || view.Selection.Countries[0] != "India" {
		t.Errorf("saved selection = %+v", view.Selection)
	}

	var list ViewListResponse
	if code := doJSON(t, s, http.MethodGet, "/api/views", nil, &list); code != http.StatusOK {
		t.Fatalf("GET /api/views = %d", code)
	}
	if len(list.Views) != 1 || list.Views[0] != "indian-titles" {
		t.Errorf("view list = %v", list.Views)
	}

	if code := doJSON(t, s, http.MethodDelete, "/api/views/indian-titles", nil, nil); code != http.StatusNoContent {
		t.Errorf("DELETE view = %d, want 204", code)
	}
	if code := doJSON(t, s, http.MethodGet, "/api/views/indian-titles", nil, nil); code != http.StatusNotFound {
		t.Errorf("GET deleted view = %d, want 404", code)
	}
}
