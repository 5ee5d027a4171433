package onboardingservice

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Onboarding модель онбординга мерчанта из OnboardingService
type Onboarding struct {
	ID                 int64    `json:"id"`
	MerchantName       string   `json:"merchant_name"`
	TrainingMode       string   `json:"training_mode"` // remote | onsite, может быть пустым
	PreferredLocation  string   `json:"preferred_location"`
	PreferredLanguages []string `json:"preferred_languages"`
}

// ErrorResponse модель ошибки от OnboardingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует ответ сервиса в domain модель.
// Неизвестные языки отбрасываются: предпочтения не должны блокировать бронирование.
func (o *Onboarding) toDomain() (*domain.OnboardingCase, error) {
	oc := &domain.OnboardingCase{
		ID:                 o.ID,
		MerchantName:       o.MerchantName,
		PreferredLocation:  strings.TrimSpace(o.PreferredLocation),
		PreferredLanguages: make([]domain.Language, 0, len(o.PreferredLanguages)),
	}

	if strings.TrimSpace(o.TrainingMode) != "" {
		mode, err := domain.ParseTrainingMode(o.TrainingMode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		oc.TrainingMode = mode
	}

	for _, l := range o.PreferredLanguages {
		lang, err := domain.ParseLanguage(l)
		if err != nil {
			continue
		}
		oc.PreferredLanguages = append(oc.PreferredLanguages, lang)
	}

	return oc, nil
}
