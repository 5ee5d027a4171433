package get_min_date

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/internal/service/sla"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

func serve(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	table := domain.SLATable{domain.MilestoneRemoteTraining: {MinDays: 1, MaxDays: 3}}
	svc := sla.NewService(table, nil, "MY", logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/milestones/{milestone}/min-date", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Handle_FridayPlusOne(t *testing.T) {
	// 2025-03-07 пятница
	rec := serve(t, "/api/v1/milestones/remote_training/min-date?reference=2025-03-07")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MinDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-10", resp.MinDate)
	assert.Equal(t, 1, resp.MinDays)
	assert.Equal(t, 3, resp.MaxDays)
	assert.Equal(t, time.Monday, mustParse(t, resp.MinDate).Weekday())
}

func TestHandler_Handle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(t, "/api/v1/milestones/site_survey/min-date?reference=2025-03-07").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, "/api/v1/milestones/remote_training/min-date").Code)
	// окно для onsite_training не настроено
	assert.Equal(t, http.StatusBadRequest, serve(t, "/api/v1/milestones/onsite_training/min-date?reference=2025-03-07").Code)
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}
