package api

import (
	"time"

	"user-center/internal/model"
)

// ListedUserResponse 列表中的單一使用者
// orders_count 與 can_edit 皆為本次請求計算的衍生欄位
// swagger:model api.ListedUserResponse
type ListedUserResponse struct {
	ID          int        `json:"id" example:"1"`
	Email       string     `json:"email" example:"alice@example.com"`
	Name        string     `json:"name" example:"Alice"`
	Role        model.Role `json:"role" example:"user"`
	CreatedAt   time.Time  `json:"created_at" example:"2026-05-01T15:04:05Z"`
	OrdersCount int        `json:"orders_count" example:"3"`
	CanEdit     bool       `json:"can_edit" example:"false"`
}

// ListUsersResponse 分頁列表回應
// swagger:model api.ListUsersResponse
type ListUsersResponse struct {
	Page  int                  `json:"page" example:"1"`
	Users []ListedUserResponse `json:"users"`
}
