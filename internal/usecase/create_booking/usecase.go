package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	trainerRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/trainer"
	onboardingClient "github.com/m04kA/SMC-TrainingService/internal/integrations/onboardingservice"
)

const flow = "explicit"

// UseCase use case для бронирования тренинга с выбранным тренером
type UseCase struct {
	slotRepo         SlotRepository
	trainerRepo      TrainerRepository
	onboardingClient OnboardingServiceClient
	txManager        TransactionManager
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	trainerRepo TrainerRepository,
	onboardingClient OnboardingServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:         slotRepo,
		trainerRepo:      trainerRepo,
		onboardingClient: onboardingClient,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции;
// частичный уникальный индекс ledger окончательно исключает двойное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.RecordBooking(flow, outcome(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: onboarding=%d, trainer=%d, date=%s, bucket=%s, mode=%s",
		req.OnboardingID, req.TrainerID, req.Date.Format(domain.DateFormat), req.Bucket, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Онбординг существует (a); недостающие требования берем из его предпочтений
	onboarding, err := uc.onboardingClient.Get(ctx, req.OnboardingID)
	if err != nil {
		if errors.Is(err, onboardingClient.ErrOnboardingNotFound) {
			uc.logger.Warn("CreateBooking: onboarding id=%d not found", req.OnboardingID)
			return nil, fmt.Errorf("%w: id=%d", ErrOnboardingNotFound, req.OnboardingID)
		}
		uc.logger.Error("CreateBooking: failed to get onboarding id=%d: %v", req.OnboardingID, err)
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
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	var (
		created *domain.TrainingSlot
		trainer *domain.Trainer
	)

	// 4. Проверки тренера, занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Тренер существует (b)
		t, err := uc.trainerRepo.GetByID(txCtx, req.TrainerID)
		if err != nil {
			if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
				return fmt.Errorf("%w: id=%d", ErrTrainerNotFound, req.TrainerID)
			}
			return fmt.Errorf("%w: failed to get trainer: %w", ErrInternal, err)
		}

		// 4.2. Тренер активен, обслуживает локацию и говорит на одном из языков (b-d)
		if err := checkTrainer(t, slotReq); err != nil {
			return err
		}

		// 4.3. Тренер свободен в (date, bucket) (e), строка блокируется FOR UPDATE
		busy, err := uc.slotRepo.ExistsBooked(txCtx, slotReq.Date, slotReq.Bucket, t.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to check trainer schedule: %w", ErrInternal, err)
		}
		if busy {
			return fmt.Errorf("%w: trainer id=%d for %s", ErrSlotAlreadyBooked, t.ID, slotReq.Describe())
		}

		// 4.4. Создаем слот (f)
		slot, err := uc.slotRepo.Create(txCtx, newSlot(req.OnboardingID, t.ID, slotReq))
		if err != nil {
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}

		trainer, created = t, slot
		return nil
	})

	if err != nil {
		err = classifyTxError(err, fmt.Sprintf("trainer id=%d for %s", req.TrainerID, slotReq.Describe()))
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
		} else {
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created slot id=%d, trainer=%d, %s",
		created.ID, trainer.ID, slotReq.Describe())
	return newResponse(created, trainer), nil
}

// classifyTxError приводит ошибку транзакции к виду ошибки домена.
// Гонка с параллельным бронированием всплывает как нарушение уникального индекса
// или ошибка сериализации, в том числе на COMMIT.
func classifyTxError(err error, details string) error {
	switch {
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrIneligible),
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

func outcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInternal):
		return "error"
	}
	return "rejected"
}
