package api

// ListUsersRequest 列表查詢參數
// page 與 sortBy 不合法時靜默回退（不回驗證錯誤），僅 search 超長會被拒絕
// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Search string `query:"search" validate:"omitempty,max=255" example:"smith"`
	Page   string `query:"page" example:"1"`
	SortBy string `query:"sortBy" example:"name"`
}
