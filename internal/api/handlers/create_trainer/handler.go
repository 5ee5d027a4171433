package create_trainer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/trainers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTrainerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, trainers.ErrInvalidInput) {
			h.logger.Warn("POST /trainers - Invalid trainer: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /trainers - Failed to create trainer: name=%q, error=%v", req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /trainers - Trainer created successfully: trainer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
