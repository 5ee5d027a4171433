package slots

import (
	"context"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// SlotRepository интерфейс ledger тренингов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TrainingSlot, error)
	GetWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.TrainingSlot, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.SlotStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
