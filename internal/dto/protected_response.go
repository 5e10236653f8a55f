// File: internal/dto/protected_response.go
package dto

// swagger:model dto.Identity
type Identity struct {
	ID    string `json:"id" example:"0b6f4a52-3c1e-4f2c-9d0e-0d8e7c9f6b11"`
	Email string `json:"email" example:"alice@example.com"`
}

// swagger:model dto.ProtectedResponse
type ProtectedResponse struct {
	Message string   `json:"message" example:"Access granted"`
	User    Identity `json:"user"`
}
