package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// TrainerDirectory интерфейс справочника тренеров
type TrainerDirectory interface {
	// FindEligible возвращает активных тренеров, подходящих по локации и языкам
	FindEligible(ctx context.Context, mode domain.TrainingMode, location string, languages []domain.Language) ([]*domain.Trainer, error)
}

// SlotRepository интерфейс ledger тренингов
type SlotRepository interface {
	// GetBookedByDate получает все booked-слоты на дату
	GetBookedByDate(ctx context.Context, date time.Time) ([]*domain.TrainingSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
