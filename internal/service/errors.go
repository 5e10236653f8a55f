// File: internal/service/errors.go
package service

import (
	"errors"
	"fmt"
)

// 服務層錯誤分類，呼叫端以 errors.Is 判斷並轉為對應的 HTTP 狀態碼
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")
	ErrMealNotFound       = errors.New("meal not found")
	ErrForbidden          = errors.New("meal owned by another user")
	ErrInternal           = errors.New("internal error")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// internalError 保留原始錯誤鏈，供 handler 記錄 log
func internalError(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
