package assignment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrNoEligibleTrainer возвращается, когда пул кандидатов пуст
	ErrNoEligibleTrainer = fmt.Errorf("%w: no eligible trainer in pool", domain.ErrNoTrainersAvailable)

	// ErrUnknownStrategy возвращается для незарегистрированной стратегии выбора
	ErrUnknownStrategy = fmt.Errorf("%w: unknown selection strategy", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assignment.service: internal error")
)
