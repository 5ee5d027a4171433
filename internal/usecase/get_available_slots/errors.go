package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: availability request", domain.ErrInvalidInput)

	// ErrRangeTooLong возвращается, когда период превышает domain.MaxRangeDays
	ErrRangeTooLong = fmt.Errorf("%w: date range is too long", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
