package api

import (
	"time"

	"user-center/internal/model"
)

// UserResponse 建立成功後回傳的使用者資訊，永不包含密碼欄位
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Email     string     `json:"email" example:"alice@example.com"`
	Name      string     `json:"name" example:"Alice"`
	Role      model.Role `json:"role" example:"user"`
	Active    bool       `json:"active" example:"true"`
	CreatedAt time.Time  `json:"created_at" example:"2026-05-01T15:04:05Z"`
}

// NewUserResponse 由實體組裝回應
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
