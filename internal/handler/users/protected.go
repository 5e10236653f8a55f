// File: internal/handler/users/protected.go
package users

import (
	"net/http"

	"daily-diet/internal/dto"
	"daily-diet/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler 回傳 token 中的使用者身分
// @Summary     Who am I
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.ProtectedResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users/protected [get]
func ProtectedHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized"})
		}
		return c.JSON(http.StatusOK, dto.ProtectedResponse{
			Message: "Access granted",
			User:    dto.Identity{ID: claims.UserID, Email: claims.Email},
		})
	}
}
