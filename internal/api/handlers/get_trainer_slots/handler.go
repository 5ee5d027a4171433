package get_trainer_slots

import (
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/slots
// Query params: from, to (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := handlers.PathID(r, "trainerId")
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(trainerID, q.Get("from"), q.Get("to"), q.Get("status"))
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByTrainer(r.Context(), serviceReq)
	if err != nil {
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("GET /trainers/{id}/slots - Failed to get slots: trainer_id=%d, error=%v", trainerID, err)
		} else {
			h.logger.Warn("GET /trainers/{id}/slots - Rejected: trainer_id=%d, error=%v", trainerID, err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /trainers/{id}/slots - Slots retrieved successfully: trainer_id=%d, count=%d",
		trainerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
