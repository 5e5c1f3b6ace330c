package progress_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/enclave-health/fitplan/internal/progress"
	"github.com/enclave-health/fitplan/internal/telemetry/metrics"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	m.Run()
	goleak.VerifyTestMain(m)
}

func newTestRouterAndRepo(t *testing.T) (*mux.Router, *MockprogressRepo, *metrics.Manager) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	metricsManager := metrics.NewTestManager()

	handler := progress.NewHandler(repoMock, progress.NewAnalyzer(repoMock), metricsManager)

	r := mux.NewRouter()
	progressRouter := r.PathPrefix("/progress").Subrouter()
	progressRouter.HandleFunc("/weight", handler.HandleAddReport).Methods("POST")
	progressRouter.HandleFunc("/weight/history", handler.HandleWeightHistory).Methods("GET")
	progressRouter.HandleFunc("/weight/list/page/{page}/size/{size}", handler.HandleList).Methods("GET")

	return r, repoMock, metricsManager
}

func TestHandler_HandleAddReport(t *testing.T) {
	r, repoMock, metricsManager := newTestRouterAndRepo(t)

	report := progress.WeightReport{
		WeightKg: 88.5,
		Note:     "morning, before breakfast",
	}
	reportJson, err := json.Marshal(report)
	require.NoError(t, err)

	now := time.Now()
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, added progress.WeightReport) (*progress.WeightReport, error) {
			assert.Equal(t, report.WeightKg, added.WeightKg)
			assert.Equal(t, report.Note, added.Note)
			added.ID = 6
			added.CreatedAt = now
			return &added, nil
		}).
		Times(1)

	req, err := http.NewRequest("POST", "/progress/weight", bytes.NewReader(reportJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var addedReport progress.WeightReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &addedReport))
	assert.Equal(t, 6, addedReport.ID)
	assert.Equal(t, 88.5, addedReport.WeightKg)

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterWeightReports))
}

func TestHandler_HandleAddReport_invalidWeight(t *testing.T) {
	r, _, metricsManager := newTestRouterAndRepo(t)

	for _, weight := range []float64{0, -80} {
		reportJson, err := json.Marshal(progress.WeightReport{WeightKg: weight})
		require.NoError(t, err)

		req, err := http.NewRequest("POST", "/progress/weight", bytes.NewReader(reportJson))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}

	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterWeightReports))
}

func TestHandler_HandleAddReport_invalidContentType(t *testing.T) {
	r, _, _ := newTestRouterAndRepo(t)

	req, err := http.NewRequest("POST", "/progress/weight", bytes.NewReader([]byte(`{"weightKg": 80}`)))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleWeightHistory(t *testing.T) {
	r, repoMock, _ := newTestRouterAndRepo(t)

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(48 * time.Hour)
	repoMock.EXPECT().
		ListAll(gomock.Any()).
		Return([]progress.WeightReport{
			{ID: 1, WeightKg: 90, CreatedAt: day1.Add(time.Hour)},
			{ID: 2, WeightKg: 88, CreatedAt: day2.Add(time.Hour)},
		}, nil).
		Times(1)

	req, err := http.NewRequest("GET", "/progress/weight/history", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var history progress.WeightHistory
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history.Stats, 2)
	assert.InDelta(t, -2, history.TotalChangeKg, 0.001)
}

func TestHandler_HandleList(t *testing.T) {
	r, repoMock, _ := newTestRouterAndRepo(t)

	repoMock.EXPECT().
		List(gomock.Any(), progress.ListParams{Page: 1, Size: 10}).
		Return([]progress.WeightReport{
			{ID: 2, WeightKg: 88, CreatedAt: time.Now()},
			{ID: 1, WeightKg: 90, CreatedAt: time.Now().Add(-24 * time.Hour)},
		}, 2, nil).
		Times(1)

	req, err := http.NewRequest("GET", "/progress/weight/list/page/1/size/10", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var response progress.ListReportsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	require.Len(t, response.Reports, 2)
	assert.Equal(t, 2, response.Reports[0].ID)
}

func TestHandler_HandleList_invalidParams(t *testing.T) {
	r, _, _ := newTestRouterAndRepo(t)

	for _, path := range []string{
		"/progress/weight/list/page/0/size/10",
		"/progress/weight/list/page/1/size/0",
	} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
	}
}
