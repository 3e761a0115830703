// File: internal/model/user.go
package model

import "time"

// Role 使用者角色枚舉
type Role string

const (
	RoleUser          Role = "user"
	RoleManager       Role = "manager"
	RoleAdministrator Role = "administrator"
)

// User 使用者資料實體
// PasswordHash 永遠不序列化輸出
// OrdersCount 為查詢時計算的衍生欄位，不落庫
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"role" json:"role"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	OrdersCount  int       `db:"orders_count" json:"orders_count"`
}
