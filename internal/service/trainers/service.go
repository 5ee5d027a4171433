package trainers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	trainerRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
)

// Service справочник тренеров: управление записями и подбор подходящих тренеров
type Service struct {
	trainerRepo TrainerRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(trainerRepo TrainerRepository, logger Logger) *Service {
	return &Service{
		trainerRepo: trainerRepo,
		logger:      logger,
	}
}

// FindEligible возвращает активных тренеров, подходящих под требования.
// Для onsite с указанной локацией оставляет тренеров, чья локация содержит её (substring, без учёта регистра).
// Для непустого списка языков оставляет тренеров, говорящих хотя бы на одном из них.
// Отсутствие подходящих тренеров - пустой список, а не ошибка.
func (s *Service) FindEligible(ctx context.Context, mode domain.TrainingMode, location string, languages []domain.Language) ([]*domain.Trainer, error) {
	active, err := s.trainerRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("FindEligible: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindEligible - repository error: %w", ErrInternal, err)
	}

	eligible := make([]*domain.Trainer, 0, len(active))
	for _, t := range active {
		if !t.IsActive() {
			continue
		}
		if t.MatchesRequirements(mode, location, languages) {
			eligible = append(eligible, t)
		}
	}

	s.logger.Info("FindEligible: %d of %d active trainers match mode=%s, location=%q, languages=%v",
		len(eligible), len(active), mode, location, languages)
	return eligible, nil
}

// Create создает тренера в статусе active
func (s *Service) Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error) {
	s.logger.Info("Create: creating trainer name=%q", req.Name)

	trainer, err := buildTrainer(req)
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	created, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created trainer id=%d", created.ID)
	return models.FromDomainTrainer(created), nil
}

// GetByID получает тренера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TrainerResponse, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("GetByID: trainer id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrTrainerNotFound, id)
		}
		s.logger.Error("GetByID: repository error for trainer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainTrainer(trainer), nil
}

// List возвращает тренеров, опционально отфильтрованных по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.TrainerListResponse, error) {
	var domainStatus *domain.TrainerStatus
	if status != nil {
		st := domain.TrainerStatus(*status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		domainStatus = &st
	}

	trainers, err := s.trainerRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainTrainerList(trainers), nil
}

// SetStatus переключает тренера между active и inactive.
// Удаления нет: тренер, на которого ссылаются слоты, только деактивируется.
func (s *Service) SetStatus(ctx context.Context, id int64, req *models.SetStatusRequest) (*models.TrainerResponse, error) {
	s.logger.Info("SetStatus: setting trainer id=%d status=%s", id, req.Status)

	status := domain.TrainerStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.IsValid() {
		s.logger.Warn("SetStatus: invalid status=%q for trainer id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if err := s.trainerRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("SetStatus: trainer id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrTrainerNotFound, id)
		}
		s.logger.Error("SetStatus: repository error for trainer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetStatus: trainer id=%d is now %s", id, status)
	return s.GetByID(ctx, id)
}

// buildTrainer валидирует запрос и собирает domain модель
func buildTrainer(req *models.CreateTrainerRequest) (*domain.Trainer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxTrainerNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxTrainerNameLength)
	}

	languages, err := domain.ParseLanguages(req.Languages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("%w: at least one language is required", ErrInvalidInput)
	}

	locations := make([]string, 0, len(req.Locations))
	for _, loc := range req.Locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		if len(loc) > domain.MaxLocationLength {
			return nil, fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
		}
		locations = append(locations, loc)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: at least one location is required", ErrInvalidInput)
	}

	return &domain.Trainer{
		Name:      name,
		Languages: languages,
		Locations: locations,
		Status:    domain.TrainerStatusActive,
	}, nil
}
