package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-center/internal/cache"
	"user-center/internal/model"
	"user-center/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newCtx(e *echo.Echo, header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOptionalAuth(t *testing.T) {
	e := echo.New()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	okNext := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("valid token sets claims", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{ID: 5, Role: model.RoleManager}, time.Minute)
		require.NoError(t, err)

		ctx, rec := newCtx(e, "Bearer "+token)
		err = OptionalAuth(func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
			require.True(t, ok)
			require.Equal(t, 5, claims.UserID)
			require.Equal(t, model.RoleManager, claims.Role)
			return c.NoContent(http.StatusOK)
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header proceeds anonymously", func(t *testing.T) {
		ctx, rec := newCtx(e, "")
		err := OptionalAuth(func(c echo.Context) error {
			require.Nil(t, c.Get(ContextUserKey))
			return okNext(c)
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token proceeds anonymously", func(t *testing.T) {
		ctx, rec := newCtx(e, "Bearer not-a-jwt")
		err := OptionalAuth(func(c echo.Context) error {
			require.Nil(t, c.Get(ContextUserKey))
			return okNext(c)
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	okNext := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("allows under limit and expires new window", func(t *testing.T) {
		count := int64(0)
		expired := 0
		store := &cache.FakeCache{
			IncrFn: func(_ context.Context, key string) *redis.IntCmd {
				require.Contains(t, key, "ratelimit:create_user:")
				count++
				return redis.NewIntResult(count, nil)
			},
			ExpireFn: func(_ context.Context, _ string, ttl time.Duration) *redis.BoolCmd {
				expired++
				require.Equal(t, time.Minute, ttl)
				return redis.NewBoolResult(true, nil)
			},
		}
		mw := RateLimit(store, "create_user", 2, time.Minute)

		for i := 0; i < 2; i++ {
			ctx, rec := newCtx(e, "")
			require.NoError(t, mw(okNext)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
		}
		require.Equal(t, 1, expired)

		ctx, rec := newCtx(e, "")
		require.NoError(t, mw(okNext)(ctx))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("fails open on redis error", func(t *testing.T) {
		store := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("down"))
			},
		}
		mw := RateLimit(store, "list_users", 1, time.Minute)
		ctx, rec := newCtx(e, "")
		require.NoError(t, mw(okNext)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
