// File: cmd/service/service.go
// @title        User Center API
// @version      1.0
// @description  使用者帳號管理 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"user-center/internal/cache"
	"user-center/internal/config"
	"user-center/internal/database"
	"user-center/internal/logger"
	"user-center/internal/mail"
	"user-center/internal/notify"
	"user-center/internal/router"
	"user-center/internal/service"
	"user-center/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "user-center/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit

	// echoprometheus 會向預設 registry 註冊 collector，抽成變數讓測試可替換
	setupMetrics = func(e *echo.Echo) {
		e.Use(echoprometheus.NewMiddleware("user_center"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
)

func run() error {
	// .env 不存在時忽略，環境變數仍可直接提供
	_ = godotenv.Load()

	cfg, err := loadConfig(context.Background())
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logg := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Debug})

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logg.Error().Err(err).Msg("關閉 Redis 連線失敗")
		}
	}()

	wp := newWorkerPool(cfg.WorkerCount, cfg.NotifyQueueSize)
	defer wp.Stop()

	mailer := mail.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	notifier := notify.NewDispatcher(wp, mailer, notify.Options{
		AdminEmail: cfg.AdminEmail,
		AppName:    cfg.AppName,
		BaseURL:    cfg.AppBaseURL,
	}, logg)
	svc := service.NewUserService(db, notifier, logg)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.HideBanner = true
	e.Use(middleware.Recover())
	setupMetrics(e)

	router.Setup(e, db, rdb, svc, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logg.Info().Int("port", cfg.Port).Msg("服務啟動")
	return startServer(e, fmt.Sprintf(":%d", cfg.Port))
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
