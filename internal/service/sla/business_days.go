package sla

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// IsBusinessDay рабочий день: не суббота, не воскресенье и не праздник
func IsBusinessDay(date time.Time, holidays domain.DateSet) bool {
	return !domain.IsWeekend(date) && !holidays.Contains(date)
}

// AddBusinessDays сдвигает ref на n рабочих дней вперед.
// При n == 0 возвращает ближайший рабочий день не раньше ref.
// Результат всегда рабочий день; время суток отбрасывается.
func AddBusinessDays(ref time.Time, n int, holidays domain.DateSet) (time.Time, error) {
	if n < 0 {
		return time.Time{}, ErrNegativeDays
	}

	d := domain.DateOnly(ref)
	if n == 0 {
		for !IsBusinessDay(d, holidays) {
			d = d.AddDate(0, 0, 1)
		}
		return d, nil
	}

	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d, holidays) {
			added++
		}
	}
	return d, nil
}
