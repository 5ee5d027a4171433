package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OnboardingID <= 0 {
		return fmt.Errorf("%w: onboardingID must be positive", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Слот должен быть из каталога
	if !req.Bucket.IsValid() {
		return fmt.Errorf("%w: bucket %q is not in the training catalogue", ErrInvalidInput, req.Bucket)
	}

	if req.Mode != "" && req.Mode != domain.TrainingModeRemote && req.Mode != domain.TrainingModeOnsite {
		return fmt.Errorf("%w: unknown training mode %q", ErrInvalidInput, req.Mode)
	}

	if len(strings.TrimSpace(req.Location)) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	return nil
}

// validateResolved проверяет требования после подстановки предпочтений онбординга
func validateResolved(req domain.SlotRequest) error {
	if req.Mode == "" {
		return fmt.Errorf("%w: training mode is not set on request nor onboarding case", ErrInvalidInput)
	}
	if req.Mode == domain.TrainingModeOnsite && req.Location == "" {
		return fmt.Errorf("%w: onsite training requires a location", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if domain.DateOnly(date).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}

// checkTrainer проверяет тренера против требований слота (шаги b-d)
func checkTrainer(trainer *domain.Trainer, req domain.SlotRequest) error {
	if !trainer.IsActive() {
		return fmt.Errorf("%w: trainer id=%d for %s", ErrTrainerInactive, trainer.ID, req.Describe())
	}

	if req.Mode == domain.TrainingModeOnsite && req.Location != "" && !trainer.ServesLocation(req.Location) {
		return fmt.Errorf("%w: trainer id=%d serves %s, requested %s",
			ErrLocationMismatch, trainer.ID, strings.Join(trainer.Locations, "; "), req.Describe())
	}

	if !trainer.SpeaksAnyOf(req.Languages) {
		return fmt.Errorf("%w: trainer id=%d for %s", ErrLanguageMismatch, trainer.ID, req.Describe())
	}

	return nil
}
