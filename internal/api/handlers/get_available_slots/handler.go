package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

const msgInvalidParams = "некорректные параметры запроса: "

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), mode (required), location, languages (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v",
				useCaseReq.Date.Format(domain.DateFormat), err)
		} else {
			h.logger.Warn("GET /available-slots - Rejected: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, mode=%s, slots_count=%d",
		useCaseReq.Date.Format(domain.DateFormat), useCaseReq.Mode, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleRange GET /api/v1/available-slots/range
// Query params: from, to (required), mode (required), location, languages, exclude (даты через запятую)
func (h *Handler) HandleRange(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRangeRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-slots/range - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams+err.Error())
		return
	}

	result, err := h.useCase.ExecuteRange(r.Context(), useCaseReq)
	if err != nil {
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("GET /available-slots/range - Failed to get slots: from=%s, to=%s, error=%v",
				useCaseReq.From.Format(domain.DateFormat), useCaseReq.To.Format(domain.DateFormat), err)
		} else {
			h.logger.Warn("GET /available-slots/range - Rejected: %v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /available-slots/range - Slots retrieved successfully: from=%s, to=%s, days=%d",
		useCaseReq.From.Format(domain.DateFormat), useCaseReq.To.Format(domain.DateFormat), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseRangeResponse(result))
}
