package list_trainers

import (
	"context"

	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
)

type TrainerService interface {
	List(ctx context.Context, status *string) (*models.TrainerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
