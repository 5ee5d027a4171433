package get_min_date

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

const (
	msgInvalidReference = "некорректная опорная дата, ожидается YYYY-MM-DD"
	msgUnknownMilestone = "неизвестный этап онбординга"
)

// MinDateResponse HTTP response model
type MinDateResponse struct {
	Milestone string `json:"milestone"`
	Reference string `json:"reference"`
	Region    string `json:"region,omitempty"`
	MinDays   int    `json:"minDays"`
	MaxDays   int    `json:"maxDays"`
	MinDate   string `json:"minDate"`
}

type Handler struct {
	service SLAService
	logger  Logger
}

func NewHandler(service SLAService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/milestones/{milestone}/min-date
// Query params: reference (required, YYYY-MM-DD), region (опционально, по умолчанию из конфигурации)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	milestone, err := domain.ParseMilestone(mux.Vars(r)["milestone"])
	if err != nil {
		h.logger.Warn("GET /milestones/{milestone}/min-date - %v", err)
		handlers.RespondBadRequest(w, msgUnknownMilestone)
		return
	}

	ref, err := time.Parse(domain.DateFormat, r.URL.Query().Get("reference"))
	if err != nil {
		h.logger.Warn("GET /milestones/{milestone}/min-date - Invalid reference date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))

	window, err := h.service.Window(milestone)
	if err != nil {
		h.logger.Warn("GET /milestones/{milestone}/min-date - %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	minDate, err := h.service.MinDateForRegion(r.Context(), milestone, ref, region)
	if err != nil {
		h.logger.Error("GET /milestones/{milestone}/min-date - Failed to compute: milestone=%s, error=%v", milestone, err)
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &MinDateResponse{
		Milestone: string(milestone),
		Reference: ref.Format(domain.DateFormat),
		Region:    region,
		MinDays:   window.MinDays,
		MaxDays:   window.MaxDays,
		MinDate:   minDate.Format(domain.DateFormat),
	})
}
