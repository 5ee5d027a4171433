package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrOnboardingNotFound возвращается, когда онбординг не найден
	ErrOnboardingNotFound = fmt.Errorf("%w: create_booking: onboarding case", domain.ErrNotFound)

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("%w: create_booking: trainer", domain.ErrNotFound)

	// ErrTrainerInactive возвращается, когда тренер деактивирован
	ErrTrainerInactive = fmt.Errorf("%w: create_booking: trainer is inactive", domain.ErrIneligible)

	// ErrLocationMismatch возвращается, когда тренер не обслуживает локацию onsite тренинга
	ErrLocationMismatch = fmt.Errorf("%w: create_booking: trainer does not serve location", domain.ErrConflict)

	// ErrLanguageMismatch возвращается, когда у тренера нет ни одного из требуемых языков
	ErrLanguageMismatch = fmt.Errorf("%w: create_booking: trainer speaks none of the required languages", domain.ErrConflict)

	// ErrSlotAlreadyBooked возвращается, когда тренер уже занят в этом слоте
	ErrSlotAlreadyBooked = fmt.Errorf("%w: create_booking: trainer is already booked", domain.ErrConflict)

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = fmt.Errorf("%w: create_booking: booking date is in the past", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
