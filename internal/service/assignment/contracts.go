package assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// LoadRepository источник статистики загрузки тренеров (ledger тренингов)
type LoadRepository interface {
	// CountBookedByTrainers считает booked-слоты тренеров в периоде [from, to]
	CountBookedByTrainers(ctx context.Context, trainerIDs []int64, from, to time.Time) (map[int64]int, error)
	// GetAssignmentStats возвращает общее число booked-слотов и время последнего назначения
	GetAssignmentStats(ctx context.Context, trainerIDs []int64) (map[int64]domain.AssignmentStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
