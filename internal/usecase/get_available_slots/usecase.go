package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// UseCase use case для получения свободных слотов тренинга
type UseCase struct {
	trainers TrainerDirectory
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	trainers TrainerDirectory,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		trainers: trainers,
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute возвращает слоты каталога на дату, в которых свободен хотя бы один подходящий тренер.
// Пустой пул подходящих тренеров - пустой список, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	location := strings.TrimSpace(req.Location)
	describe := domain.SlotRequest{Date: date, Mode: req.Mode, Location: location, Languages: req.Languages}.Describe()
	uc.logger.Info("GetAvailableSlots: %s", describe)

	// 2. Подбираем подходящих тренеров
	pool, err := uc.trainers.FindEligible(ctx, req.Mode, location, req.Languages)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to find eligible trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to find eligible trainers: %v", ErrInternal, err)
	}
	if len(pool) == 0 {
		uc.logger.Info("GetAvailableSlots: no trainer matches %s", describe)
		return &Response{Date: date, Slots: []Slot{}}, nil
	}

	// 3-5. Вычитаем занятых тренеров по каждому слоту
	slots, err := uc.dayAvailability(ctx, date, pool)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: %d open buckets for %s (pool=%d)", len(slots), describe, len(pool))
	return &Response{Date: date, Slots: slots}, nil
}

// ExecuteRange применяет Execute к каждому дню периода [From, To].
// Выходные пропускаются, праздники исключает вызывающий через ExcludedDates.
func (uc *UseCase) ExecuteRange(ctx context.Context, req *RangeRequest) (*RangeResponse, error) {
	// 1. Валидация входных данных
	if err := validateRangeRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlotsRange: validation failed: %v", err)
		return nil, err
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	location := strings.TrimSpace(req.Location)
	uc.logger.Info("GetAvailableSlotsRange: %s, period=%s..%s, excluded=%d",
		domain.SlotRequest{Mode: req.Mode, Location: location, Languages: req.Languages}.Describe(),
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(req.ExcludedDates))

	resp := &RangeResponse{From: from, To: to, Days: []Response{}}

	// 2. Пул подходящих тренеров не зависит от даты
	pool, err := uc.trainers.FindEligible(ctx, req.Mode, location, req.Languages)
	if err != nil {
		uc.logger.Error("GetAvailableSlotsRange: failed to find eligible trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to find eligible trainers: %v", ErrInternal, err)
	}
	if len(pool) == 0 {
		uc.logger.Info("GetAvailableSlotsRange: no trainer matches the requirements")
		return resp, nil
	}

	// 3. Считаем доступность по рабочим дням
	excluded := domain.NewDateSet(req.ExcludedDates)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if domain.IsWeekend(d) || excluded.Contains(d) {
			continue
		}

		slots, err := uc.dayAvailability(ctx, d, pool)
		if err != nil {
			return nil, err
		}
		resp.Days = append(resp.Days, Response{Date: d, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlotsRange: computed %d business days", len(resp.Days))
	return resp, nil
}

func (uc *UseCase) dayAvailability(ctx context.Context, date time.Time, pool []*domain.Trainer) ([]Slot, error) {
	booked, err := uc.slotRepo.GetBookedByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}
	return calculateAvailability(pool, booked), nil
}
