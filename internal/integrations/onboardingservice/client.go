package onboardingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Client клиент для работы с OnboardingService (только чтение)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OnboardingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Get получает онбординг по ID
func (c *Client) Get(ctx context.Context, onboardingID int64) (*domain.OnboardingCase, error) {
	url := fmt.Sprintf("%s/internal/onboardings/%d", c.baseURL, onboardingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("OnboardingService: request for onboarding id=%d failed: %v", onboardingID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid onboarding ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrOnboardingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var onboarding Onboarding
	if err := json.NewDecoder(resp.Body).Decode(&onboarding); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return onboarding.toDomain()
}

// Exists проверяет существование онбординга
func (c *Client) Exists(ctx context.Context, onboardingID int64) (bool, error) {
	_, err := c.Get(ctx, onboardingID)
	if err != nil {
		if errors.Is(err, ErrOnboardingNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
