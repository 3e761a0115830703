package api

// CreateUserRequest 建立使用者請求 (JSON body)
// role 與 active 不接受外部輸入，服務端一律強制 user / true
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Name     string `json:"name" validate:"required,max=255" example:"Alice"`
}
