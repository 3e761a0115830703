// File: internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersCreated 成功建立的使用者總數
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_center_users_created_total",
		Help: "Total number of users created successfully.",
	})

	// NotificationsEnqueued 依類型統計已排入佇列的通知郵件
	NotificationsEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "user_center_notifications_enqueued_total",
		Help: "Total number of notification emails enqueued, by kind.",
	}, []string{"kind"})

	// NotificationFailures 通知寄送或排入失敗總數（皆已吞掉）
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_center_notification_failures_total",
		Help: "Total number of notification emails dropped or failed to send.",
	})
)
