// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"user-center/internal/api"
	"user-center/internal/config"
	"user-center/internal/service"
	"user-center/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 接收 JSON 資料並建立新帳號，role 一律為 user、active 一律為 true (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "請求格式錯誤"
// @Failure     422 {object} api.ValidationErrorResponse "驗證失敗"
// @Failure     429 {object} api.ErrorResponse "超過頻率限制"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Router      /users [post]
func CreateUserHandler(svc service.Users, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.NewValidationError(err))
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()

		// 驗證層的存在性檢查；同 email 併發競爭仍由唯一約束兜底
		exists, err := svc.EmailExists(ctx, req.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, createFailed(cfg, err))
		}
		if exists {
			return c.JSON(http.StatusUnprocessableEntity, api.NewFieldError("email", "has already been taken"))
		}

		created, err := svc.CreateUser(ctx, service.CreateUserInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusUnprocessableEntity, api.NewFieldError("email", "has already been taken"))
			}
			return c.JSON(http.StatusInternalServerError, createFailed(cfg, err))
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(*created))
	}
}

func createFailed(cfg *config.Config, err error) api.ErrorResponse {
	resp := api.ErrorResponse{Message: "Failed to create user. Please try again later."}
	if cfg.Debug {
		resp.Detail = err.Error()
	}
	return resp
}
