package holidayservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// DefaultCacheTTL календарь праздников меняется редко
const DefaultCacheTTL = 24 * time.Hour

const keyPrefix = "training:holidays:" // + region:year

// CachedProvider кэширует праздники в Redis по (region, year).
// При первой ошибке Redis кэш отключается, и запросы идут напрямую в next.
type CachedProvider struct {
	client *redis.Client
	next   Provider
	ttl    time.Duration
	log    Logger

	mu       sync.RWMutex
	disabled bool
}

// NewCachedProvider оборачивает next кэшем. client == nil означает работу без кэша.
func NewCachedProvider(client *redis.Client, next Provider, ttl time.Duration, log Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		client:   client,
		next:     next,
		ttl:      ttl,
		log:      log,
		disabled: client == nil,
	}
}

// GetHolidays реализует Provider
func (p *CachedProvider) GetHolidays(ctx context.Context, year int, region string) ([]time.Time, error) {
	key := cacheKey(region, year)

	if dates, ok := p.get(ctx, key); ok {
		return dates, nil
	}

	dates, err := p.next.GetHolidays(ctx, year, region)
	if err != nil {
		return nil, err
	}

	p.set(ctx, key, dates)
	return dates, nil
}

// IsAvailable возвращает true, пока кэш работает
func (p *CachedProvider) IsAvailable() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.disabled
}

func (p *CachedProvider) get(ctx context.Context, key string) ([]time.Time, bool) {
	if !p.IsAvailable() {
		return nil, false
	}

	data, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		p.handleError(err, "get")
		return nil, false
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		p.log.Warn("HolidayCache: failed to unmarshal key=%s: %v", key, err)
		return nil, false
	}

	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			p.log.Warn("HolidayCache: bad cached date %q in key=%s", s, key)
			return nil, false
		}
		dates = append(dates, d)
	}
	return dates, true
}

func (p *CachedProvider) set(ctx context.Context, key string, dates []time.Time) {
	if !p.IsAvailable() {
		return
	}

	raw := make([]string, len(dates))
	for i, d := range dates {
		raw[i] = d.Format(domain.DateFormat)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		p.log.Warn("HolidayCache: failed to marshal key=%s: %v", key, err)
		return
	}

	if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
		p.handleError(err, "set")
	}
}

// handleError отключает кэш после ошибки Redis
func (p *CachedProvider) handleError(err error, operation string) {
	p.mu.Lock()
	p.disabled = true
	p.mu.Unlock()
	p.log.Warn("HolidayCache: %s failed, disabling cache: %v", operation, err)
}

func cacheKey(region string, year int) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, region, year)
}
