package update_trainer_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/service/trainers"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

type fakeService struct {
	gotID     int64
	gotStatus string
	err       error
}

func (f *fakeService) SetStatus(_ context.Context, id int64, req *models.SetStatusRequest) (*models.TrainerResponse, error) {
	f.gotID, f.gotStatus = id, req.Status
	if f.err != nil {
		return nil, f.err
	}
	return &models.TrainerResponse{ID: id, Status: req.Status}, nil
}

func serve(svc *fakeService, path, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/trainers/{trainerId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(payload)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/trainers/4/status", `{"status":"inactive"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), svc.gotID)
	assert.Equal(t, "inactive", svc.gotStatus)
}

func TestHandler_Handle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: trainers.ErrTrainerNotFound}, "/api/v1/trainers/4/status", `{"status":"active"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: trainers.ErrInvalidInput}, "/api/v1/trainers/4/status", `{"status":"retired"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/trainers/0/status", `{"status":"active"}`).Code)
}
