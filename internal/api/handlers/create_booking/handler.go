package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TrainingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры бронирования: "
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты, слота и языков)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Trainer already booked: onboarding_id=%d, trainer_id=%d",
				req.OnboardingID, req.TrainerID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, createBooking.ErrOnboardingNotFound),
			errors.Is(err, createBooking.ErrTrainerNotFound):
			h.logger.Warn("POST /bookings - Not found: onboarding_id=%d, trainer_id=%d",
				req.OnboardingID, req.TrainerID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, createBooking.ErrTrainerInactive):
			h.logger.Warn("POST /bookings - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /bookings - Failed to create booking: onboarding_id=%d, trainer_id=%d, error=%v",
				req.OnboardingID, req.TrainerID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /bookings - Rejected: onboarding_id=%d, trainer_id=%d, error=%v",
				req.OnboardingID, req.TrainerID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: slot_id=%d, onboarding_id=%d, trainer_id=%d",
		result.ID, result.OnboardingID, result.TrainerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
