package auto_assign_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	autoAssign "github.com/m04kA/SMC-TrainingService/internal/usecase/auto_assign_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры бронирования: "
)

type Handler struct {
	useCase AutoAssignBookingUseCase
	logger  Logger
}

func NewHandler(useCase AutoAssignBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/auto-assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AutoAssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/auto-assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/auto-assign - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, autoAssign.ErrNoTrainersAvailable):
			h.logger.Warn("POST /bookings/auto-assign - No trainers available: onboarding_id=%d, %v",
				req.OnboardingID, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, autoAssign.ErrInternal):
			h.logger.Error("POST /bookings/auto-assign - Failed to assign trainer: onboarding_id=%d, error=%v",
				req.OnboardingID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /bookings/auto-assign - Rejected: onboarding_id=%d, error=%v", req.OnboardingID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/auto-assign - Trainer assigned: slot_id=%d, onboarding_id=%d, trainer_id=%d, strategy=%s",
		result.ID, result.OnboardingID, result.TrainerID, result.Strategy)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
