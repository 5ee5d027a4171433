package auto_assign_booking

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

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Bucket.IsValid() {
		return fmt.Errorf("%w: bucket %q is not in the training catalogue", ErrInvalidInput, req.Bucket)
	}

	if req.Mode != "" && req.Mode != domain.TrainingModeRemote && req.Mode != domain.TrainingModeOnsite {
		return fmt.Errorf("%w: unknown training mode %q", ErrInvalidInput, req.Mode)
	}

	if len(strings.TrimSpace(req.Location)) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Strategy != "" {
		if _, err := domain.ParseSelectionStrategy(string(req.Strategy)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
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
