package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-TrainingService/internal/service/slots/models"
)

// Service жизненный цикл забронированных тренингов: отмена, завершение, выборки
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// Cancel переводит слот booked -> cancelled.
// Для уже завершенного или отмененного слота возвращает ErrSlotTerminal, состояние не меняется.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.SlotResponse, error) {
	return s.transition(ctx, "Cancel", id, domain.SlotStatusCancelled)
}

// Complete переводит слот booked -> completed.
// Для уже завершенного или отмененного слота возвращает ErrSlotTerminal, состояние не меняется.
func (s *Service) Complete(ctx context.Context, id int64) (*models.SlotResponse, error) {
	return s.transition(ctx, "Complete", id, domain.SlotStatusCompleted)
}

// ListByOnboarding возвращает все слоты онбординга (во всех статусах)
func (s *Service) ListByOnboarding(ctx context.Context, onboardingID int64) (*models.SlotListResponse, error) {
	s.logger.Info("ListByOnboarding: fetching slots for onboarding=%d", onboardingID)

	slots, err := s.slotRepo.GetWithFilter(ctx, domain.SlotFilter{OnboardingID: &onboardingID})
	if err != nil {
		s.logger.Error("ListByOnboarding: repository error for onboarding=%d: %v", onboardingID, err)
		return nil, fmt.Errorf("%w: ListByOnboarding - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByOnboarding: fetched %d slots for onboarding=%d", len(slots), onboardingID)
	return models.FromDomainSlotList(slots), nil
}

// ListByTrainer возвращает слоты тренера, опционально за период и по статусу
func (s *Service) ListByTrainer(ctx context.Context, req *models.ListByTrainerRequest) (*models.SlotListResponse, error) {
	logMsg := fmt.Sprintf("ListByTrainer: fetching slots for trainer=%d", req.TrainerID)
	if req.StartDate != nil {
		logMsg += fmt.Sprintf(", from=%s", req.StartDate.Format(domain.DateFormat))
	}
	if req.EndDate != nil {
		logMsg += fmt.Sprintf(", to=%s", req.EndDate.Format(domain.DateFormat))
	}
	s.logger.Info("%s", logMsg)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidInput,
			req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByTrainer: invalid filter for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots, err := s.slotRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByTrainer: repository error for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: ListByTrainer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByTrainer: fetched %d slots for trainer=%d", len(slots), req.TrainerID)
	return models.FromDomainSlotList(slots), nil
}

// transition выполняет смену статуса в транзакции: чтение с блокировкой строки,
// проверка допустимости перехода и compare-and-swap обновление
func (s *Service) transition(ctx context.Context, op string, id int64, to domain.SlotStatus) (*models.SlotResponse, error) {
	s.logger.Info("%s: slot id=%d -> %s", op, id, to)

	var updated *domain.TrainingSlot
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
			}
			return fmt.Errorf("%w: %s - get slot: %v", ErrInternal, op, err)
		}

		if !slot.CanTransitionTo(to) {
			return fmt.Errorf("%w: slot id=%d is %s", ErrSlotTerminal, id, slot.Status)
		}

		if err := s.slotRepo.TransitionStatus(ctx, id, slot.Status, to); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrStatusMismatch):
				return fmt.Errorf("%w: slot id=%d changed concurrently", ErrSlotTerminal, id)
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
			}
			return fmt.Errorf("%w: %s - transition status: %v", ErrInternal, op, err)
		}

		updated, err = s.slotRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: %s - reload slot: %v", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound), errors.Is(err, ErrSlotTerminal):
			s.logger.Warn("%s: rejected for slot id=%d: %v", op, id, err)
		default:
			s.logger.Error("%s: failed for slot id=%d: %v", op, id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
			}
		}
		return nil, err
	}

	s.logger.Info("%s: slot id=%d is now %s", op, id, updated.Status)
	return models.FromDomainSlot(updated), nil
}
