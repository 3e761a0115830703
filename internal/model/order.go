// File: internal/model/order.go
package model

import "time"

// Order 訂單實體，僅保留與使用者關聯所需欄位
type Order struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
