// File: internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"
	"time"

	"user-center/internal/mail"
	"user-center/internal/metrics"
	"user-center/internal/model"
	"user-center/internal/worker"

	"github.com/rs/zerolog"
)

// sendTimeout 單封郵件寄送逾時
const sendTimeout = 10 * time.Second

// Notifier 定義使用者建立後的通知介面
// 實作必須 best-effort：任何失敗都不得影響呼叫端
type Notifier interface {
	NotifyNewUser(user model.User)
}

// Options Dispatcher 行為設定
type Options struct {
	// AdminEmail 為空時跳過管理員通知
	AdminEmail string
	AppName    string
	BaseURL    string
}

// Dispatcher 將通知郵件排入 worker pool 非同步寄送
// 排入失敗或寄送失敗只記錄並吞掉，永不回傳錯誤
type Dispatcher struct {
	pool   worker.Pool
	mailer mail.Mailer
	opts   Options
	log    zerolog.Logger
}

func NewDispatcher(pool worker.Pool, mailer mail.Mailer, opts Options, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{pool: pool, mailer: mailer, opts: opts, log: log}
}

// NotifyNewUser 排入歡迎信與管理員通知信
func (d *Dispatcher) NotifyNewUser(user model.User) {
	d.enqueue("welcome", user, welcomeMessage(user, d.opts))
	if d.opts.AdminEmail != "" {
		d.enqueue("admin_alert", user, adminAlertMessage(user, d.opts))
	}
}

func (d *Dispatcher) enqueue(kind string, user model.User, msg mail.Message) {
	ok := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := d.mailer.Send(ctx, msg); err != nil {
			metrics.NotificationFailures.Inc()
			d.log.Error().
				Err(err).
				Str("kind", kind).
				Int("user_id", user.ID).
				Str("to", msg.To).
				Msg("通知郵件寄送失敗")
		}
	})
	if !ok {
		metrics.NotificationFailures.Inc()
		d.log.Error().
			Str("kind", kind).
			Int("user_id", user.ID).
			Str("to", msg.To).
			Msg("通知佇列已滿，郵件被丟棄")
		return
	}
	metrics.NotificationsEnqueued.WithLabelValues(kind).Inc()
}

func welcomeMessage(user model.User, opts Options) mail.Message {
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Welcome to %s! Your account has been created with the email %s.\n\n"+
			"Get started here: %s\n",
		user.Name, opts.AppName, user.Email, opts.BaseURL,
	)
	return mail.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("Welcome to %s", opts.AppName),
		Body:    body,
	}
}

func adminAlertMessage(user model.User, opts Options) mail.Message {
	body := fmt.Sprintf(
		"Hello Admin,\n\n"+
			"A new user has just registered on the platform.\n\n"+
			"Name: %s\nEmail: %s\nRegistered At: %s\n",
		user.Name, user.Email, user.CreatedAt.Format(time.RFC3339),
	)
	return mail.Message{
		To:      opts.AdminEmail,
		Subject: "New User Registered",
		Body:    body,
	}
}
