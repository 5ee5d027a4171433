package models

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Request модели

// ListByTrainerRequest запрос на получение слотов тренера
type ListByTrainerRequest struct {
	TrainerID int64      `json:"trainerId"`
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByTrainerRequest) ToDomainFilter() (domain.SlotFilter, error) {
	trainerID := r.TrainerID
	filter := domain.SlotFilter{
		TrainerID: &trainerID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status := domain.SlotStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID                int64    `json:"id"`
	OnboardingID      int64    `json:"onboardingId"`
	TrainerID         int64    `json:"trainerId"`
	Date              string   `json:"date"`   // "2025-03-01"
	Bucket            string   `json:"bucket"` // "09:00"
	Mode              string   `json:"mode"`
	Location          *string  `json:"location,omitempty"`
	RequiredLanguages []string `json:"requiredLanguages"`
	Status            string   `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	CompletedAt *string `json:"completedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TrainingSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	languages := make([]string, len(s.RequiredLanguages))
	for i, l := range s.RequiredLanguages {
		languages[i] = string(l)
	}

	resp := &SlotResponse{
		ID:                s.ID,
		OnboardingID:      s.OnboardingID,
		TrainerID:         s.TrainerID,
		Date:              s.Date.Format(domain.DateFormat),
		Bucket:            s.Bucket.String(),
		Mode:              string(s.Mode),
		Location:          s.Location,
		RequiredLanguages: languages,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}

	if s.CancelledAt != nil {
		cancelled := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	if s.CompletedAt != nil {
		completed := s.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}

	return resp
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TrainingSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
