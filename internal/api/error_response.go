package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse 一般錯誤回應
// Detail 只在 debug 模式下帶出內部錯誤訊息
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"Failed to create user. Please try again later."`
	Detail  string `json:"error,omitempty"`
}

// ValidationErrorResponse 422 驗證失敗回應，Errors 為欄位層級錯誤表
// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message" example:"Validation failed."`
	Errors  map[string]string `json:"errors"`
}

// NewValidationError 將 validator 錯誤轉為欄位錯誤表
func NewValidationError(err error) ValidationErrorResponse {
	resp := ValidationErrorResponse{
		Message: "Validation failed.",
		Errors:  map[string]string{},
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
		return resp
	}
	resp.Errors["_"] = err.Error()
	return resp
}

// NewFieldError 單一欄位錯誤（如 email 已被使用）
func NewFieldError(field, message string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Message: "Validation failed.",
		Errors:  map[string]string{field: message},
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "max":
		return fmt.Sprintf("Must not exceed %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
