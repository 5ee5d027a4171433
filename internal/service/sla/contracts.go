package sla

import (
	"context"
	"time"
)

// HolidayProvider источник нерабочих дней по году и региону
type HolidayProvider interface {
	GetHolidays(ctx context.Context, year int, region string) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
