package auto_assign_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/internal/service/assignment"
)

// SlotRepository интерфейс ledger тренингов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TrainingSlot) (*domain.TrainingSlot, error)
	GetBookedByDate(ctx context.Context, date time.Time) ([]*domain.TrainingSlot, error)
}

// TrainerDirectory интерфейс справочника тренеров
type TrainerDirectory interface {
	FindEligible(ctx context.Context, mode domain.TrainingMode, location string, languages []domain.Language) ([]*domain.Trainer, error)
}

// SelectorRegistry стратегии выбора тренера
type SelectorRegistry interface {
	Get(strategy domain.SelectionStrategy) (assignment.Selector, error)
	Default() domain.SelectionStrategy
}

// OnboardingServiceClient интерфейс клиента для OnboardingService
type OnboardingServiceClient interface {
	Get(ctx context.Context, onboardingID int64) (*domain.OnboardingCase, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics учет исходов бронирования
type Metrics interface {
	RecordBooking(flow, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
