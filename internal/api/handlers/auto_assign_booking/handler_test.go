package auto_assign_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	autoAssign "github.com/m04kA/SMC-TrainingService/internal/usecase/auto_assign_booking"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

type fakeUseCase struct {
	got *autoAssign.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *autoAssign.Request) (*autoAssign.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &autoAssign.Response{
		ID:           3,
		OnboardingID: req.OnboardingID,
		TrainerID:    2,
		TrainerName:  "Farid",
		Date:         req.Date,
		Bucket:       req.Bucket,
		Mode:         domain.TrainingModeRemote,
		Status:       domain.SlotStatusBooked,
		Strategy:     domain.StrategyWeeklyLoad,
		PoolSize:     3,
	}, nil
}

func post(h *Handler, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/auto-assign", strings.NewReader(payload)))
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, logger.NewNop()),
		`{"onboardingId":10,"date":"2025-03-03","bucket":"10:00","mode":"remote","strategy":"weekly_load"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.StrategyWeeklyLoad, uc.got.Strategy)

	var resp AutoAssignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.TrainerID)
	assert.Equal(t, "weekly_load", resp.Strategy)
	assert.Equal(t, 3, resp.CandidatesCount)
}

func TestHandler_Handle_UnknownStrategy(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, logger.NewNop()),
		`{"onboardingId":10,"date":"2025-03-03","bucket":"10:00","strategy":"round_robin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandler_Handle_NoTrainers(t *testing.T) {
	err := fmt.Errorf("%w: no eligible trainer for Onsite training in Selangor on 2025-03-03 at 10:00",
		autoAssign.ErrNoTrainersAvailable)
	rec := post(NewHandler(&fakeUseCase{err: err}, logger.NewNop()),
		`{"onboardingId":10,"date":"2025-03-03","bucket":"10:00"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Onsite training in Selangor")
}

func TestHandler_Handle_OtherErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{autoAssign.ErrOnboardingNotFound, http.StatusNotFound},
		{autoAssign.ErrSlotAlreadyBooked, http.StatusConflict},
		{autoAssign.ErrInvalidDate, http.StatusBadRequest},
		{fmt.Errorf("%w: redis", autoAssign.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := post(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()),
			`{"onboardingId":10,"date":"2025-03-03","bucket":"10:00"}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
