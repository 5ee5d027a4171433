package get_onboarding_slots

import (
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
)

const msgInvalidOnboardingID = "некорректный ID онбординга"

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

// Handle GET /api/v1/onboardings/{onboardingId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onboardingID, err := handlers.PathID(r, "onboardingId")
	if err != nil {
		h.logger.Warn("GET /onboardings/{id}/slots - Invalid onboarding ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOnboardingID)
		return
	}

	result, err := h.service.ListByOnboarding(r.Context(), onboardingID)
	if err != nil {
		h.logger.Error("GET /onboardings/{id}/slots - Failed to get slots: onboarding_id=%d, error=%v",
			onboardingID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /onboardings/{id}/slots - Slots retrieved successfully: onboarding_id=%d, count=%d",
		onboardingID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
