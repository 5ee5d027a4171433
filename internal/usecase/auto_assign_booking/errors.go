package auto_assign_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrOnboardingNotFound возвращается, когда онбординг не найден
	ErrOnboardingNotFound = fmt.Errorf("%w: auto_assign_booking: onboarding case", domain.ErrNotFound)

	// ErrNoTrainersAvailable возвращается, когда нет подходящего свободного тренера
	ErrNoTrainersAvailable = fmt.Errorf("%w: auto_assign_booking", domain.ErrNoTrainersAvailable)

	// ErrSlotAlreadyBooked возвращается, когда выбранного тренера заняли параллельно
	ErrSlotAlreadyBooked = fmt.Errorf("%w: auto_assign_booking: trainer was booked concurrently", domain.ErrConflict)

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = fmt.Errorf("%w: auto_assign_booking: booking date is in the past", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: auto_assign_booking", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("auto_assign_booking: internal error")
)
