package trainers

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = fmt.Errorf("%w: trainer", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: trainer", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trainers.service: internal error")
)
