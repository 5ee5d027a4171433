package holidayservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClient_GetHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/holidays", r.URL.Path)
		switch r.URL.Query().Get("region") {
		case "MY":
			assert.Equal(t, "2025", r.URL.Query().Get("year"))
			_, _ = w.Write([]byte(`{"year":2025,"region":"MY","holidays":[` +
				`{"date":"2025-08-31","name":"Merdeka"},{"date":"2025-09-16","name":"Malaysia Day"}]}`))
		case "XX":
			w.WriteHeader(http.StatusNotFound)
		case "BAD":
			_, _ = w.Write([]byte(`{"holidays":[{"date":"31/08/2025"}]}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	ctx := context.Background()

	dates, err := client.GetHolidays(ctx, 2025, "MY")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2025, time.August, 31), date(2025, time.September, 16)}, dates)

	dates, err = client.GetHolidays(ctx, 2025, "XX")
	require.NoError(t, err)
	assert.Empty(t, dates)

	_, err = client.GetHolidays(ctx, 2025, "BAD")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetHolidays(ctx, 2025, "SG")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetHolidays(ctx, 2025, " ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

type countingProvider struct {
	calls int
	dates []time.Time
	err   error
}

func (p *countingProvider) GetHolidays(_ context.Context, _ int, _ string) ([]time.Time, error) {
	p.calls++
	return p.dates, p.err
}

func TestCachedProvider_WithoutRedis(t *testing.T) {
	next := &countingProvider{dates: []time.Time{date(2025, time.May, 1)}}
	cached := NewCachedProvider(nil, next, 0, logger.NewNop())

	assert.False(t, cached.IsAvailable())
	for i := 0; i < 2; i++ {
		dates, err := cached.GetHolidays(context.Background(), 2025, "MY")
		require.NoError(t, err)
		assert.Len(t, dates, 1)
	}
	assert.Equal(t, 2, next.calls)
}

func TestCachedProvider_DisablesOnRedisError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	next := &countingProvider{dates: []time.Time{date(2025, time.May, 1)}}
	cached := NewCachedProvider(client, next, time.Minute, logger.NewNop())
	require.True(t, cached.IsAvailable())

	dates, err := cached.GetHolidays(context.Background(), 2025, "MY")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2025, time.May, 1)}, dates)
	assert.False(t, cached.IsAvailable())
	assert.Equal(t, 1, next.calls)
}

func TestCachedProvider_PropagatesProviderError(t *testing.T) {
	next := &countingProvider{err: errors.New("timeout")}
	cached := NewCachedProvider(nil, next, 0, logger.NewNop())

	_, err := cached.GetHolidays(context.Background(), 2025, "MY")
	assert.Error(t, err)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "training:holidays:MY:2026", cacheKey("MY", 2026))
}
