package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// validateRequest валидирует входные данные запроса на дату
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return validateRequirements(req.Mode, req.Location)
}

// validateRangeRequest валидирует входные данные запроса на период
func validateRangeRequest(req *RangeRequest) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: to %s is before from %s", ErrInvalidInput,
			to.Format(domain.DateFormat), from.Format(domain.DateFormat))
	}

	// Период включает обе границы
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxRangeDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, domain.MaxRangeDays)
	}

	return validateRequirements(req.Mode, req.Location)
}

func validateRequirements(mode domain.TrainingMode, location string) error {
	if mode != domain.TrainingModeRemote && mode != domain.TrainingModeOnsite {
		return fmt.Errorf("%w: unknown training mode %q", ErrInvalidInput, mode)
	}
	if len(strings.TrimSpace(location)) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}
	return nil
}
