package update_trainer_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
)

const (
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "тренер не найден"
)

type Handler struct {
	service TrainerService
	logger  Logger
}

func NewHandler(service TrainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/trainers/{trainerId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("PATCH /trainers/{id}/status - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req models.SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /trainers/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), trainerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, trainers.ErrTrainerNotFound):
			h.logger.Warn("PATCH /trainers/{id}/status - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, trainers.ErrInvalidInput):
			h.logger.Warn("PATCH /trainers/{id}/status - Invalid status: trainer_id=%d, status=%q", trainerID, req.Status)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /trainers/{id}/status - Failed to update status: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /trainers/{id}/status - Status updated: trainer_id=%d, status=%s", trainerID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
