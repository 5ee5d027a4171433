package get_min_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

type SLAService interface {
	Window(milestone domain.Milestone) (domain.SLAWindow, error)
	MinDateForRegion(ctx context.Context, milestone domain.Milestone, ref time.Time, region string) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
