package sla

import (
	"fmt"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrUnknownMilestone возвращается, когда для milestone нет SLA окна
	ErrUnknownMilestone = fmt.Errorf("%w: no SLA window for milestone", domain.ErrInvalidInput)

	// ErrNegativeDays возвращается при отрицательном числе рабочих дней
	ErrNegativeDays = fmt.Errorf("%w: business days must be non-negative", domain.ErrInvalidInput)
)
