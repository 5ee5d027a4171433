package list_trainers

import (
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
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

// Handle GET /api/v1/trainers
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("GET /trainers - Failed to list trainers: %v", err)
		} else {
			h.logger.Warn("GET /trainers - Rejected: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /trainers - Trainers retrieved successfully: count=%d", len(result.Trainers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
