// File: internal/handler/users/register.go
package users

import (
	"errors"
	"fmt"
	"net/http"

	"daily-diet/internal/database"
	"daily-diet/internal/dto"
	"daily-diet/internal/logging"
	"daily-diet/internal/service"

	"github.com/labstack/echo/v4"
)

var registerUser = service.RegisterUser

// RegisterHandler 建立新使用者
// @Summary     Register a new user
// @Description 接收 Email 與密碼建立新帳號 (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterUserRequest true "註冊資料"
// @Success     201  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     422  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /users/register [post]
func RegisterHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		_, err := registerUser(c.Request().Context(), db, req.Email, req.Password)
		if errors.Is(err, service.ErrUserExists) {
			return c.JSON(http.StatusUnprocessableEntity, dto.HTTPError{Message: "User already exists"})
		}
		if err != nil {
			logging.FromContext(c).WithError(err).Error("register user failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
	}
}
