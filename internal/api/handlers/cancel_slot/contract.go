package cancel_slot

import (
	"context"

	"github.com/m04kA/SMC-TrainingService/internal/service/slots/models"
)

type SlotService interface {
	Cancel(ctx context.Context, id int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
