package cancel_slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/service/slots"
	"github.com/m04kA/SMC-TrainingService/internal/service/slots/models"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

type fakeService struct {
	gotID int64
	err   error
}

func (f *fakeService) Cancel(_ context.Context, id int64) (*models.SlotResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.SlotResponse{ID: id, TrainerID: 1, Status: "cancelled"}, nil
}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/slots/{slotId}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/slots/5/cancel")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.gotID)

	var resp models.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"bad id", "/api/v1/slots/abc/cancel", nil, http.StatusBadRequest},
		{"not found", "/api/v1/slots/5/cancel", slots.ErrSlotNotFound, http.StatusNotFound},
		{"terminal", "/api/v1/slots/5/cancel", fmt.Errorf("%w: id=5 status=completed", slots.ErrSlotTerminal), http.StatusConflict},
		{"internal", "/api/v1/slots/5/cancel", fmt.Errorf("%w: %v", slots.ErrInternal, errors.New("db")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.path)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
