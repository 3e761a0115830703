// File: internal/router/router.go
package router

import (
	"time"

	"user-center/internal/cache"
	"user-center/internal/config"
	"user-center/internal/database"
	"user-center/internal/handler"
	"user-center/internal/handler/users"
	"user-center/internal/middleware"
	"user-center/internal/service"

	"github.com/labstack/echo/v4"
)

// 建立 10 次/分、列表 60 次/分，對應路由層的頻率限制
const (
	createUserLimit = 10
	listUsersLimit  = 60
	rateWindow      = time.Minute
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, svc service.Users, cfg *config.Config) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(svc, cfg),
		middleware.RateLimit(rdb, "create_user", createUserLimit, rateWindow))
	apiUsers.GET("", users.ListUsersHandler(svc, cfg),
		middleware.OptionalAuth,
		middleware.RateLimit(rdb, "list_users", listUsersLimit, rateWindow))
}
