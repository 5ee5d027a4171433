package holidayservice

import (
	"context"
	"time"
)

// Provider источник нерабочих дней
type Provider interface {
	GetHolidays(ctx context.Context, year int, region string) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
