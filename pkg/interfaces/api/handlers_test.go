package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettaearth/intel/pkg/application/services/dataset"
	"github.com/lettaearth/intel/pkg/application/services/orchestration"
	"github.com/lettaearth/intel/pkg/infrastructure/news"
	"github.com/lettaearth/intel/pkg/infrastructure/reference"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/memory"
)

type stubHeadlines struct {
	items  []news.Item
	err    error
	query  string
	region news.Region
}

func (s *stubHeadlines) Headlines(_ context.Context, query string, region news.Region) ([]news.Item, error) {
	s.query, s.region = query, region
	return s.items, s.err
}

func newTestRouter(t *testing.T, headlines HeadlineSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()

	salesRepo := memory.NewSalesRepository(0)
	inventoryRepo := memory.NewInventoryRepository()
	demandRepo := memory.NewDemandRepository()

	datasets := dataset.NewManager(salesRepo, inventoryRepo, demandRepo, logger)
	_, err := datasets.Regenerate(42)
	require.NoError(t, err)

	planner := orchestration.NewPlanningOrchestrator(salesRepo, inventoryRepo, demandRepo, logger)
	h := NewHandler(planner, datasets, reference.NewCatalog(), headlines,
		Defaults{Horizon: 3, TargetDOS: 45, Seed: 42}, logger)
	return NewRouter(h, logger)
}

func doRequest(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})
	w := doRequest(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSupplyPlan(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/supply-plan?horizon=2&target_dos=30")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Horizon   int     `json:"horizon"`
		TargetDOS float64 `json:"target_dos"`
		Plan      []struct {
			Product string `json:"product"`
			Health  string `json:"health"`
		} `json:"plan"`
		Forecast []json.RawMessage `json:"forecast"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Horizon)
	assert.Equal(t, 30.0, body.TargetDOS)
	assert.Len(t, body.Plan, 10)
	assert.Len(t, body.Forecast, 20)
	assert.NotEmpty(t, body.Plan[0].Health)
}

func TestSupplyPlan_InvalidTarget(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/supply-plan?target_dos=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/supply-plan?target_dos=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupplyPlan_ZeroHorizonMissingForecast(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/supply-plan?horizon=0")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestForecast(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/forecast")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"horizon":3`)

	w = doRequest(r, http.MethodGet, "/api/v1/forecast?horizon=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportSupplyPlan(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/supply-plan/export?format=csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "product,on_hand,on_order"))

	w = doRequest(r, http.MethodGet, "/api/v1/supply-plan/export?format=xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "supply_plan.xlsx")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))

	w = doRequest(r, http.MethodGet, "/api/v1/supply-plan/export?format=json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAllocation(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/allocation?product=Cocoa&available=500")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Available   int64 `json:"available"`
		Allocated   int64 `json:"allocated"`
		Unallocated int64 `json:"unallocated"`
		Rows        []json.RawMessage
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(500), body.Available)
	assert.LessOrEqual(t, body.Allocated, int64(500))
	assert.Equal(t, body.Available-body.Allocated, body.Unallocated)
	assert.NotEmpty(t, body.Rows)
}

func TestAllocation_Errors(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	tests := []struct {
		target string
		status int
	}{
		{"/api/v1/allocation?available=10", http.StatusBadRequest},
		{"/api/v1/allocation?product=Cocoa", http.StatusBadRequest},
		{"/api/v1/allocation?product=Cocoa&available=ten", http.StatusBadRequest},
		{"/api/v1/allocation?product=Cocoa&available=-5", http.StatusBadRequest},
		{"/api/v1/allocation?product=Unobtainium&available=5", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		w := doRequest(r, http.MethodGet, tt.target)
		assert.Equal(t, tt.status, w.Code, tt.target)
	}
}

func TestRegenerate(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodPost, "/api/v1/data/regenerate?seed=7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"seed":7`)
	assert.Contains(t, w.Body.String(), `"inventory":10`)

	w = doRequest(r, http.MethodPost, "/api/v1/data/regenerate?seed=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommodities(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{})

	w := doRequest(r, http.MethodGet, "/api/v1/commodities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Palm Oil")

	w = doRequest(r, http.MethodGet, "/api/v1/commodities/cocoa")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"commodity":"Cocoa"`)
	assert.Contains(t, w.Body.String(), "Ivory Coast")
}

func TestNews(t *testing.T) {
	stub := &stubHeadlines{items: []news.Item{{Title: "Cocoa rally", Source: "Reuters"}}}
	r := newTestRouter(t, stub)

	w := doRequest(r, http.MethodGet, "/api/v1/news?commodity=cocoa&region=Turkey")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cocoa rally")
	assert.Equal(t, "Cocoa", stub.query)
	assert.Equal(t, news.RegionTurkey, stub.region)

	w = doRequest(r, http.MethodGet, "/api/v1/news?commodity=cocoa&region=Atlantis")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/news")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNews_UpstreamFailure(t *testing.T) {
	r := newTestRouter(t, &stubHeadlines{err: news.ErrFetchFailed})

	w := doRequest(r, http.MethodGet, "/api/v1/news?commodity=Coffee")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
