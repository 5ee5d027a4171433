package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Selector выбирает одного тренера из пула свободных и подходящих кандидатов
type Selector interface {
	Select(ctx context.Context, pool []*domain.Trainer, referenceDate time.Time) (*domain.Trainer, error)
}

// WeeklyLoadSelector выбирает тренера с наименьшим числом booked-слотов
// в неделе (понедельник - воскресенье), содержащей referenceDate
type WeeklyLoadSelector struct {
	repo   LoadRepository
	logger Logger
}

// NewWeeklyLoadSelector создает селектор по недельной загрузке
func NewWeeklyLoadSelector(repo LoadRepository, logger Logger) *WeeklyLoadSelector {
	return &WeeklyLoadSelector{repo: repo, logger: logger}
}

// Select реализует Selector
func (s *WeeklyLoadSelector) Select(ctx context.Context, pool []*domain.Trainer, referenceDate time.Time) (*domain.Trainer, error) {
	if len(pool) == 0 {
		return nil, ErrNoEligibleTrainer
	}
	if len(pool) == 1 {
		return pool[0], nil
	}

	monday, sunday := domain.WeekBounds(referenceDate)
	counts, err := s.repo.CountBookedByTrainers(ctx, trainerIDs(pool), monday, sunday)
	if err != nil {
		s.logger.Error("WeeklyLoadSelector: failed to count bookings for week %s..%s: %v",
			monday.Format(domain.DateFormat), sunday.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: WeeklyLoadSelector - count bookings: %w", ErrInternal, err)
	}

	chosen := RankByWeeklyLoad(pool, counts)[0]
	s.logger.Info("WeeklyLoadSelector: picked trainer id=%d with %d bookings in week of %s (pool=%d)",
		chosen.ID, counts[chosen.ID], monday.Format(domain.DateFormat), len(pool))
	return chosen, nil
}

// LeastRecentSelector выбирает тренера с наименьшим общим числом назначений,
// а при равенстве - дольше всех ожидающего нового назначения
type LeastRecentSelector struct {
	repo   LoadRepository
	logger Logger
}

// NewLeastRecentSelector создает селектор по общему числу назначений и давности
func NewLeastRecentSelector(repo LoadRepository, logger Logger) *LeastRecentSelector {
	return &LeastRecentSelector{repo: repo, logger: logger}
}

// Select реализует Selector. referenceDate не используется: статистика всегда за все время.
func (s *LeastRecentSelector) Select(ctx context.Context, pool []*domain.Trainer, _ time.Time) (*domain.Trainer, error) {
	if len(pool) == 0 {
		return nil, ErrNoEligibleTrainer
	}
	if len(pool) == 1 {
		return pool[0], nil
	}

	stats, err := s.repo.GetAssignmentStats(ctx, trainerIDs(pool))
	if err != nil {
		s.logger.Error("LeastRecentSelector: failed to load assignment stats: %v", err)
		return nil, fmt.Errorf("%w: LeastRecentSelector - assignment stats: %w", ErrInternal, err)
	}

	chosen := RankByRecency(pool, stats)[0]
	s.logger.Info("LeastRecentSelector: picked trainer id=%d with %d total bookings (pool=%d)",
		chosen.ID, stats[chosen.ID].BookedCount, len(pool))
	return chosen, nil
}

// Registry набор стратегий выбора, доступных по имени
type Registry struct {
	selectors map[domain.SelectionStrategy]Selector
	fallback  domain.SelectionStrategy
}

// NewRegistry регистрирует обе стратегии; fallback используется, когда стратегия не указана
func NewRegistry(repo LoadRepository, logger Logger, fallback domain.SelectionStrategy) *Registry {
	return &Registry{
		selectors: map[domain.SelectionStrategy]Selector{
			domain.StrategyWeeklyLoad:  NewWeeklyLoadSelector(repo, logger),
			domain.StrategyLeastRecent: NewLeastRecentSelector(repo, logger),
		},
		fallback: fallback,
	}
}

// Get возвращает селектор по имени стратегии; пустое имя означает стратегию по умолчанию
func (r *Registry) Get(strategy domain.SelectionStrategy) (Selector, error) {
	if strategy == "" {
		strategy = r.fallback
	}
	sel, ok := r.selectors[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return sel, nil
}

// Default имя стратегии по умолчанию
func (r *Registry) Default() domain.SelectionStrategy {
	return r.fallback
}
