// File: internal/handler/users/list_users.go
package users

import (
	"net/http"
	"strconv"

	"user-center/internal/api"
	"user-center/internal/config"
	"user-center/internal/middleware"
	"user-center/internal/model"
	"user-center/internal/service"
	"user-center/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 取得分頁使用者列表
// @Summary     List users
// @Description 列出 active 使用者，支援搜尋、排序與分頁；每列附上 orders_count 與相對於呼叫者的 can_edit
// @Tags        users
// @Produce     json
// @Param       search query string false "搜尋 name 或 email (不分大小寫)"
// @Param       page   query int    false "頁碼，<1 或不合法時回退為 1"
// @Param       sortBy query string false "排序欄位 name|email|created_at，其他值回退為 created_at"
// @Success     200 {object} api.ListUsersResponse
// @Failure     422 {object} api.ValidationErrorResponse "驗證失敗"
// @Failure     429 {object} api.ErrorResponse "超過頻率限制"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(svc service.Users, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.NewValidationError(err))
		}

		// page 與 sortBy 採寬鬆策略：解析失敗一律交由查詢層回退
		page, _ := strconv.Atoi(req.Page)

		listing, err := svc.ListUsers(c.Request().Context(), store.ListUsersParams{
			Search: req.Search,
			SortBy: req.SortBy,
			Page:   page,
		}, actorFromContext(c))
		if err != nil {
			resp := api.ErrorResponse{Message: "Failed to retrieve users. Please try again later."}
			if cfg.Debug {
				resp.Detail = err.Error()
			}
			return c.JSON(http.StatusInternalServerError, resp)
		}

		users := make([]api.ListedUserResponse, 0, len(listing.Users))
		for _, u := range listing.Users {
			users = append(users, api.ListedUserResponse{
				ID:          u.ID,
				Email:       u.Email,
				Name:        u.Name,
				Role:        u.Role,
				CreatedAt:   u.CreatedAt,
				OrdersCount: u.OrdersCount,
				CanEdit:     u.CanEdit,
			})
		}
		return c.JSON(http.StatusOK, api.ListUsersResponse{Page: listing.Page, Users: users})
	}
}

// actorFromContext 從 OptionalAuth 注入的 claims 還原請求者，匿名時回傳 nil
func actorFromContext(c echo.Context) *model.User {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil || claims.UserID == 0 {
		return nil
	}
	return &model.User{ID: claims.UserID, Role: claims.Role}
}
