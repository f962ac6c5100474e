package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"imf-gadget-api/internal/cache"
	"imf-gadget-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newGet(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// memCache 以 map 模擬 Redis 的 Set/Get
func memCache() *cache.FakeCache {
	store := map[string]string{}
	return &cache.FakeCache{
		SetFn: func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
			store[key] = val.(string)
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := store[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
	}
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	healthyDB := func() *database.FakeDB {
		return &database.FakeDB{PingFn: func(context.Context) error { return nil }}
	}

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("fail") }}
		ctx, rec := newGet(e, "/health")
		require.NoError(t, HealthHandler(db, &cache.FakeCache{}, "test")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "DATABASE_UNHEALTHY", decode(t, rec)["code"])
	})

	t.Run("cache set fails", func(t *testing.T) {
		cch := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		ctx, rec := newGet(e, "/health")
		require.NoError(t, HealthHandler(healthyDB(), cch, "test")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "CACHE_UNHEALTHY", decode(t, rec)["code"])
	})

	t.Run("cache read back mismatch", func(t *testing.T) {
		cch := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("stale", nil)
			},
		}
		ctx, rec := newGet(e, "/health")
		require.NoError(t, HealthHandler(healthyDB(), cch, "test")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("cache get fails", func(t *testing.T) {
		cch := memCache()
		cch.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}
		ctx, rec := newGet(e, "/health")
		require.NoError(t, HealthHandler(healthyDB(), cch, "test")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(func() { timeNow = time.Now })
		timeNow = func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 5e6, time.UTC) }

		ctx, rec := newGet(e, "/health")
		require.NoError(t, HealthHandler(healthyDB(), memCache(), "production")(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "operational", body["status"])
		require.Equal(t, "production", body["environment"])
		require.Equal(t, "2024-07-01T12:00:00.005Z", body["timestamp"])
		require.NotEmpty(t, body["message"])
	})
}

func TestRootHandler(t *testing.T) {
	ctx, rec := newGet(echo.New(), "/")
	require.NoError(t, RootHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, Version, body["version"])
	require.Equal(t, "/api/gadgets", body["endpoints"].(map[string]any)["gadgets"])
}
