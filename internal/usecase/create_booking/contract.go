package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// SlotRepository интерфейс ledger тренингов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TrainingSlot) (*domain.TrainingSlot, error)
	ExistsBooked(ctx context.Context, date time.Time, bucket domain.TimeBucket, trainerID int64) (bool, error)
}

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
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
