package auto_assign_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	autoAssign "github.com/m04kA/SMC-TrainingService/internal/usecase/auto_assign_booking"
)

// AutoAssignRequest HTTP request model
type AutoAssignRequest struct {
	OnboardingID int64    `json:"onboardingId"`
	Date         string   `json:"date"`
	Bucket       string   `json:"bucket"`
	Mode         string   `json:"mode,omitempty"`
	Location     string   `json:"location,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Strategy     string   `json:"strategy,omitempty"` // weekly_load | least_recent
}

// AutoAssignResponse HTTP response model
type AutoAssignResponse struct {
	ID                int64    `json:"id"`
	OnboardingID      int64    `json:"onboardingId"`
	TrainerID         int64    `json:"trainerId"`
	TrainerName       string   `json:"trainerName"`
	Date              string   `json:"date"`
	Bucket            string   `json:"bucket"`
	Mode              string   `json:"mode"`
	Location          *string  `json:"location,omitempty"`
	RequiredLanguages []string `json:"requiredLanguages"`
	Status            string   `json:"status"`
	Strategy          string   `json:"strategy"`
	CandidatesCount   int      `json:"candidatesCount"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AutoAssignRequest) ToUseCaseRequest() (*autoAssign.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	bucket, err := domain.ParseTimeBucket(r.Bucket)
	if err != nil {
		return nil, err
	}

	var mode domain.TrainingMode
	if strings.TrimSpace(r.Mode) != "" {
		if mode, err = domain.ParseTrainingMode(r.Mode); err != nil {
			return nil, err
		}
	}

	languages, err := domain.ParseLanguages(r.Languages)
	if err != nil {
		return nil, err
	}

	var strategy domain.SelectionStrategy
	if r.Strategy != "" {
		if strategy, err = domain.ParseSelectionStrategy(r.Strategy); err != nil {
			return nil, err
		}
	}

	return &autoAssign.Request{
		OnboardingID: r.OnboardingID,
		Date:         date,
		Bucket:       bucket,
		Mode:         mode,
		Location:     r.Location,
		Languages:    languages,
		Strategy:     strategy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *autoAssign.Response) *AutoAssignResponse {
	languages := make([]string, len(resp.RequiredLanguages))
	for i, l := range resp.RequiredLanguages {
		languages[i] = string(l)
	}

	return &AutoAssignResponse{
		ID:                resp.ID,
		OnboardingID:      resp.OnboardingID,
		TrainerID:         resp.TrainerID,
		TrainerName:       resp.TrainerName,
		Date:              resp.Date.Format(domain.DateFormat),
		Bucket:            resp.Bucket.String(),
		Mode:              string(resp.Mode),
		Location:          resp.Location,
		RequiredLanguages: languages,
		Status:            string(resp.Status),
		Strategy:          string(resp.Strategy),
		CandidatesCount:   resp.PoolSize,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
