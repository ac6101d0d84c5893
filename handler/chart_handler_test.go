// file: handler/chart_handler_test.go

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"go-charts-api/model"
	"go-charts-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockChartRepoForHandler is a mock implementation of IChartRepository for
// testing the chart handler through a real ChartService.
type mockChartRepoForHandler struct{ mock.Mock }

func (m *mockChartRepoForHandler) GetByKey(key string) (*model.Chart, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chart), args.Error(1)
}

func (m *mockChartRepoForHandler) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockChartRepoForHandler) InsertBatch(charts []*model.Chart) error {
	args := m.Called(charts)
	return args.Error(0)
}

// chartMux routes through a real ServeMux so r.PathValue sees the key.
func chartMux(repo *mockChartRepoForHandler) *http.ServeMux {
	chartService := service.NewChartService(repo, nil, []string{"summary", "reports"})
	chartHandler := NewChartHandler(chartService)

	mux := http.NewServeMux()
	mux.Handle("GET /api/charts/{key}", ErrorHandlingMiddleware(chartHandler.GetChart))
	return mux
}

func TestChartHandler_GetChart(t *testing.T) {
	t.Run("returns the stored dataset", func(t *testing.T) {
		mockRepo := new(mockChartRepoForHandler)
		seeded := service.SeedCharts()[0]
		mockRepo.On("GetByKey", "summary").Return(seeded, nil).Once()

		req, _ := http.NewRequest("GET", "/api/charts/summary", nil)
		rr := httptest.NewRecorder()
		chartMux(mockRepo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var chart model.Chart
		err := json.Unmarshal(rr.Body.Bytes(), &chart)
		assert.NoError(t, err)
		assert.Equal(t, "summary", chart.Key)
		assert.Equal(t, seeded.Title, chart.Title)
		assert.Equal(t, seeded.Data, chart.Data)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown key is 404 without a store call", func(t *testing.T) {
		mockRepo := new(mockChartRepoForHandler)

		req, _ := http.NewRequest("GET", "/api/charts/bogus", nil)
		rr := httptest.NewRecorder()
		chartMux(mockRepo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "chart_not_found")
		mockRepo.AssertNotCalled(t, "GetByKey")
	})

	t.Run("allowed key without record is 404", func(t *testing.T) {
		mockRepo := new(mockChartRepoForHandler)
		mockRepo.On("GetByKey", "reports").Return(nil, sql.ErrNoRows).Once()

		req, _ := http.NewRequest("GET", "/api/charts/reports", nil)
		rr := httptest.NewRecorder()
		chartMux(mockRepo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "chart_not_found")
		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		mockRepo := new(mockChartRepoForHandler)
		mockRepo.On("GetByKey", "summary").Return(nil, errors.New("store unreachable")).Once()

		req, _ := http.NewRequest("GET", "/api/charts/summary", nil)
		rr := httptest.NewRecorder()
		chartMux(mockRepo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "dependency_error")
		mockRepo.AssertExpectations(t)
	})
}
