package sla

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Service вычисляет допустимые даты этапов онбординга по SLA окнам в рабочих днях
type Service struct {
	table         domain.SLATable
	holidays      HolidayProvider
	defaultRegion string
	logger        Logger
}

// NewService создает сервис SLA. Таблица копируется и далее не меняется.
func NewService(table domain.SLATable, holidays HolidayProvider, defaultRegion string, logger Logger) *Service {
	cp := make(domain.SLATable, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &Service{
		table:         cp,
		holidays:      holidays,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

// Window возвращает SLA окно milestone
func (s *Service) Window(milestone domain.Milestone) (domain.SLAWindow, error) {
	w, ok := s.table[milestone]
	if !ok {
		return domain.SLAWindow{}, fmt.Errorf("%w: %s", ErrUnknownMilestone, milestone)
	}
	return w, nil
}

// MinDateFor самая ранняя допустимая дата: ref + min рабочих дней.
// Чистая функция от входных данных, без I/O.
func (s *Service) MinDateFor(milestone domain.Milestone, ref time.Time, holidays domain.DateSet) (time.Time, error) {
	w, err := s.Window(milestone)
	if err != nil {
		return time.Time{}, err
	}
	return AddBusinessDays(ref, w.MinDays, holidays)
}

// MaxDateFor самая поздняя допустимая дата: ref + max рабочих дней.
// Сам модуль верхнюю границу не применяет, она нужна вызывающим для валидации.
func (s *Service) MaxDateFor(milestone domain.Milestone, ref time.Time, holidays domain.DateSet) (time.Time, error) {
	w, err := s.Window(milestone)
	if err != nil {
		return time.Time{}, err
	}
	return AddBusinessDays(ref, w.MaxDays, holidays)
}

// MinDateForRegion как MinDateFor, но праздники запрашиваются у провайдера
// за год ref и следующий год. Недоступность провайдера не ошибка: за отказавший год праздников нет.
func (s *Service) MinDateForRegion(ctx context.Context, milestone domain.Milestone, ref time.Time, region string) (time.Time, error) {
	if _, err := s.Window(milestone); err != nil {
		return time.Time{}, err
	}
	if region == "" {
		region = s.defaultRegion
	}

	holidays := s.loadHolidays(ctx, ref.Year(), region)
	minDate, err := s.MinDateFor(milestone, ref, holidays)
	if err != nil {
		return time.Time{}, err
	}

	s.logger.Info("MinDateForRegion: milestone=%s, reference=%s, region=%s -> %s",
		milestone, ref.Format(domain.DateFormat), region, minDate.Format(domain.DateFormat))
	return minDate, nil
}

// loadHolidays собирает праздники за year и year+1, чтобы окно могло перейти через новый год
func (s *Service) loadHolidays(ctx context.Context, year int, region string) domain.DateSet {
	if s.holidays == nil {
		return domain.DateSet{}
	}

	var all []time.Time
	for _, y := range []int{year, year + 1} {
		dates, err := s.holidays.GetHolidays(ctx, y, region)
		if err != nil {
			// остальные годы сохраняем, отказавший считаем годом без праздников
			s.logger.Error("loadHolidays: holiday provider failed for year=%d, region=%s, assuming no holidays for that year: %v", y, region, err)
			continue
		}
		all = append(all, dates...)
	}
	return domain.NewDateSet(all)
}
