package create_trainer

import (
	"context"

	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
)

type TrainerService interface {
	Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
