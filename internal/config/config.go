// File: internal/config/config.go
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config 服務設定，全部由環境變數載入
type Config struct {
	Port     int    `env:"PORT, default=8080"`
	Debug    bool   `env:"DEBUG, default=false"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DatabaseURL string `env:"DATABASE_URL, required"`

	RedisAddr     string `env:"REDIS_ADDR, required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB, default=0"`

	JWTSecret string `env:"JWT_SECRET, required"`

	AppName    string `env:"APP_NAME, default=user-center"`
	AppBaseURL string `env:"APP_BASE_URL, default=http://localhost:8080"`

	// AdminEmail 為空時不寄送管理員通知
	AdminEmail   string `env:"ADMIN_EMAIL"`
	MailFrom     string `env:"MAIL_FROM, default=no-reply@localhost"`
	SMTPAddr     string `env:"SMTP_ADDR, default=localhost:25"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	WorkerCount int `env:"WORKER_COUNT, default=4"`
	// NotifyQueueSize 通知佇列容量，滿載時丟棄並記錄
	NotifyQueueSize int `env:"NOTIFY_QUEUE_SIZE, default=64"`
}

// Load 由環境變數載入設定
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
