package trainers

import (
	"context"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	Create(ctx context.Context, t *domain.Trainer) (*domain.Trainer, error)
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
	List(ctx context.Context, status *domain.TrainerStatus) ([]*domain.Trainer, error)
	ListActive(ctx context.Context) ([]*domain.Trainer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TrainerStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
