package models

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Request модели

// CreateTrainerRequest запрос на создание тренера
type CreateTrainerRequest struct {
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
	Locations []string `json:"locations"`
}

// SetStatusRequest запрос на смену статуса тренера
type SetStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TrainerResponse ответ с данными тренера
type TrainerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Languages []string  `json:"languages"`
	Locations []string  `json:"locations"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrainerListResponse ответ со списком тренеров
type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t *domain.Trainer) *TrainerResponse {
	if t == nil {
		return nil
	}

	languages := make([]string, len(t.Languages))
	for i, l := range t.Languages {
		languages[i] = string(l)
	}

	locations := make([]string, len(t.Locations))
	copy(locations, t.Locations)

	return &TrainerResponse{
		ID:        t.ID,
		Name:      t.Name,
		Languages: languages,
		Locations: locations,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTrainerList конвертирует список domain моделей в DTO
func FromDomainTrainerList(trainers []*domain.Trainer) *TrainerListResponse {
	resp := &TrainerListResponse{
		Trainers: make([]TrainerResponse, 0, len(trainers)),
	}
	for _, t := range trainers {
		if tr := FromDomainTrainer(t); tr != nil {
			resp.Trainers = append(resp.Trainers, *tr)
		}
	}
	return resp
}
