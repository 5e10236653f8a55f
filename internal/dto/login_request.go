// File: internal/dto/login_request.go
package dto

// LoginRequest 只檢查欄位存在，格式錯誤一律由登入流程回傳 401
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
