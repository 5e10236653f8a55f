// File: internal/dto/register_user_request.go
package dto

// swagger:model dto.RegisterUserRequest
type RegisterUserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
}
