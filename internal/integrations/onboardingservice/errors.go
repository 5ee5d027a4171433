package onboardingservice

import "errors"

var (
	// ErrOnboardingNotFound возвращается, когда онбординг не найден
	ErrOnboardingNotFound = errors.New("onboarding case not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("onboardingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("onboardingservice client: invalid response")
)
