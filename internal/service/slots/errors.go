package slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: training slot", domain.ErrNotFound)

	// ErrSlotTerminal возвращается при попытке изменить завершенный или отмененный слот
	ErrSlotTerminal = fmt.Errorf("%w: training slot is already terminal", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: training slot", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
