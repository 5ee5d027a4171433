package holidayservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Client клиент для работы с HolidayService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента HolidayService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает нерабочие дни за год для региона
func (c *Client) GetHolidays(ctx context.Context, year int, region string) ([]time.Time, error) {
	region = strings.TrimSpace(region)
	if year <= 0 || region == "" {
		return nil, fmt.Errorf("%w: year=%d, region=%q", ErrInvalidRequest, year, region)
	}

	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("region", region)
	endpoint := fmt.Sprintf("%s/api/v1/holidays?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Регион без календаря: праздников нет
		c.log.Warn("HolidayService: no calendar for region=%s, year=%d", region, year)
		return []time.Time{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payload HolidaysResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	dates := make([]time.Time, 0, len(payload.Holidays))
	for _, h := range payload.Holidays {
		d, err := time.Parse(domain.DateFormat, h.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad holiday date %q: %v", ErrInvalidResponse, h.Date, err)
		}
		dates = append(dates, d)
	}

	c.log.Info("HolidayService: fetched %d holidays for region=%s, year=%d", len(dates), region, year)
	return dates, nil
}
