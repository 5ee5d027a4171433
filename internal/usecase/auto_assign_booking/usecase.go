package auto_assign_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	onboardingClient "github.com/m04kA/SMC-TrainingService/internal/integrations/onboardingservice"
)

const flow = "auto_assign"

// UseCase use case для бронирования тренинга с автоматическим выбором тренера
type UseCase struct {
	slotRepo         SlotRepository
	trainers         TrainerDirectory
	selectors        SelectorRegistry
	onboardingClient OnboardingServiceClient
	txManager        TransactionManager
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	trainers TrainerDirectory,
	selectors SelectorRegistry,
	onboardingClient OnboardingServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:         slotRepo,
		trainers:         trainers,
		selectors:        selectors,
		onboardingClient: onboardingClient,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute подбирает свободного подходящего тренера и бронирует слот.
// Отбор кандидатов, выбор и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.RecordBooking(flow, outcome(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AutoAssignBooking: onboarding=%d, date=%s, bucket=%s, mode=%s, strategy=%s",
		req.OnboardingID, req.Date.Format(domain.DateFormat), req.Bucket, req.Mode, req.Strategy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AutoAssignBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("AutoAssignBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Стратегия выбора
	strategy := req.Strategy
	if strategy == "" {
		strategy = uc.selectors.Default()
	}
	selector, err := uc.selectors.Get(strategy)
	if err != nil {
		uc.logger.Warn("AutoAssignBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Онбординг существует (a); недостающие требования берем из его предпочтений
	onboarding, err := uc.onboardingClient.Get(ctx, req.OnboardingID)
	if err != nil {
		if errors.Is(err, onboardingClient.ErrOnboardingNotFound) {
			uc.logger.Warn("AutoAssignBooking: onboarding id=%d not found", req.OnboardingID)
			return nil, fmt.Errorf("%w: id=%d", ErrOnboardingNotFound, req.OnboardingID)
		}
		uc.logger.Error("AutoAssignBooking: failed to get onboarding id=%d: %v", req.OnboardingID, err)
		return nil, fmt.Errorf("%w: failed to get onboarding: %v", ErrInternal, err)
	}

	slotReq := onboarding.WithPreferences(domain.SlotRequest{
		Date:      domain.DateOnly(req.Date),
		Bucket:    req.Bucket,
		Mode:      req.Mode,
		Location:  strings.TrimSpace(req.Location),
		Languages: req.Languages,
	})
	if err := validateResolved(slotReq); err != nil {
		uc.logger.Warn("AutoAssignBooking: %v", err)
		return nil, err
	}

	var (
		created  *domain.TrainingSlot
		trainer  *domain.Trainer
		poolSize int
	)

	// 5. Подбор и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные тренеры, подходящие по локации и языкам (b)
		eligible, err := uc.trainers.FindEligible(txCtx, slotReq.Mode, slotReq.Location, slotReq.Languages)
		if err != nil {
			return fmt.Errorf("%w: failed to find eligible trainers: %w", ErrInternal, err)
		}
		if len(eligible) == 0 {
			return fmt.Errorf("%w: no eligible trainer for %s", ErrNoTrainersAvailable, slotReq.Describe())
		}

		// 5.2. Исключаем занятых в (date, bucket) (c)
		booked, err := uc.slotRepo.GetBookedByDate(txCtx, slotReq.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to load booked slots: %w", ErrInternal, err)
		}
		free := domain.NewBookedIndex(booked).Free(slotReq.Bucket, eligible)
		if len(free) == 0 {
			return fmt.Errorf("%w: all %d eligible trainers are booked for %s",
				ErrNoTrainersAvailable, len(eligible), slotReq.Describe())
		}

		// 5.3. Выбор по стратегии (d)
		chosen, err := selector.Select(txCtx, free, slotReq.Date)
		if err != nil {
			return err
		}

		// 5.4. Создаем слот (e)
		slot, err := uc.slotRepo.Create(txCtx, newSlot(req.OnboardingID, chosen.ID, slotReq))
		if err != nil {
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}

		trainer, created, poolSize = chosen, slot, len(free)
		return nil
	})

	if err != nil {
		err = classifyTxError(err, slotReq.Describe())
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("AutoAssignBooking: %v", err)
		} else {
			uc.logger.Warn("AutoAssignBooking: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("AutoAssignBooking: created slot id=%d, trainer=%d (strategy=%s, pool=%d), %s",
		created.ID, trainer.ID, strategy, poolSize, slotReq.Describe())

	resp := newResponse(created, trainer)
	resp.Strategy = strategy
	resp.PoolSize = poolSize
	return resp, nil
}

// classifyTxError приводит ошибку транзакции к виду ошибки домена
func classifyTxError(err error, details string) error {
	switch {
	case errors.Is(err, domain.ErrNoTrainersAvailable):
		if errors.Is(err, ErrNoTrainersAvailable) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrNoTrainersAvailable, details)
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidInput):
		return err
	case slotRepo.IsWriteConflict(err):
		return fmt.Errorf("%w: %s", ErrSlotAlreadyBooked, details)
	case errors.Is(err, ErrInternal):
		return err
	}
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}

func newSlot(onboardingID, trainerID int64, req domain.SlotRequest) *domain.TrainingSlot {
	slot := &domain.TrainingSlot{
		OnboardingID:      onboardingID,
		TrainerID:         trainerID,
		Date:              req.Date,
		Bucket:            req.Bucket,
		Mode:              req.Mode,
		RequiredLanguages: req.Languages,
		Status:            domain.SlotStatusBooked,
	}
	if req.Mode == domain.TrainingModeOnsite {
		location := req.Location
		slot.Location = &location
	}
	if slot.RequiredLanguages == nil {
		slot.RequiredLanguages = []domain.Language{}
	}
	return slot
}

func newResponse(slot *domain.TrainingSlot, trainer *domain.Trainer) *Response {
	return &Response{
		ID:                slot.ID,
		OnboardingID:      slot.OnboardingID,
		TrainerID:         slot.TrainerID,
		TrainerName:       trainer.Name,
		Date:              slot.Date,
		Bucket:            slot.Bucket,
		Mode:              slot.Mode,
		Location:          slot.Location,
		RequiredLanguages: slot.RequiredLanguages,
		Status:            slot.Status,
		CreatedAt:         slot.CreatedAt,
		UpdatedAt:         slot.UpdatedAt,
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrNoTrainersAvailable):
		return "no_trainers"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInternal):
		return "error"
	}
	return "rejected"
}
