package auto_assign_booking

import (
	"context"

	autoAssign "github.com/m04kA/SMC-TrainingService/internal/usecase/auto_assign_booking"
)

type AutoAssignBookingUseCase interface {
	Execute(ctx context.Context, req *autoAssign.Request) (*autoAssign.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
