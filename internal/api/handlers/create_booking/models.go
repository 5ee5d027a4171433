package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	createBooking "github.com/m04kA/SMC-TrainingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OnboardingID int64    `json:"onboardingId"`
	TrainerID    int64    `json:"trainerId"`
	Date         string   `json:"date"`   // "2025-03-03"
	Bucket       string   `json:"bucket"` // "09:00"
	Mode         string   `json:"mode,omitempty"`
	Location     string   `json:"location,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
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
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
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

	return &createBooking.Request{
		OnboardingID: r.OnboardingID,
		TrainerID:    r.TrainerID,
		Date:         date,
		Bucket:       bucket,
		Mode:         mode,
		Location:     r.Location,
		Languages:    languages,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	languages := make([]string, len(resp.RequiredLanguages))
	for i, l := range resp.RequiredLanguages {
		languages[i] = string(l)
	}

	return &BookingResponse{
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
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
