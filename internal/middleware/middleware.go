package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"user-center/internal/api"
	"user-center/internal/cache"
	"user-center/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// OptionalAuth 嘗試解析 Bearer token 並注入 claims
// token 缺失或不合法時以匿名身分放行，不回 401
func OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := extractClaims(c); err == nil {
			c.Set(ContextUserKey, claims)
		}
		return next(c)
	}
}

// RateLimit 以 Redis 固定視窗計數限流，key 以路由名稱加呼叫端 IP 區分
// Redis 故障時放行（fail-open），避免快取問題擋下所有請求
func RateLimit(store cache.Cache, name string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", name, c.RealIP())

			n, err := store.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				store.Expire(ctx, key, window)
			}
			if n > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "too many requests"})
			}
			return next(c)
		}
	}
}
