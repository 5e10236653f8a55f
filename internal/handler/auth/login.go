// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"daily-diet/internal/database"
	"daily-diet/internal/dto"
	"daily-diet/internal/logging"
	"daily-diet/internal/service"

	"github.com/labstack/echo/v4"
)

var login = service.Login

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.Querier, tokenTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		token, err := login(c.Request().Context(), db, req.Email, req.Password, tokenTTL)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid email or password"})
		}
		if err != nil {
			logging.FromContext(c).WithError(err).Error("login failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful", Token: token})
	}
}
