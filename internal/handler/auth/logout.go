// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"daily-diet/internal/cache"
	"daily-diet/internal/dto"
	"daily-diet/internal/logging"
	"daily-diet/internal/middleware"
	"daily-diet/internal/service"

	"github.com/labstack/echo/v4"
)

var revokeToken = service.RevokeToken

// LogoutHandler 撤銷目前的存取令牌
// @Summary     登出
// @Description 將目前 token 的 jti 加入撤銷清單直到過期
// @Tags        auth
// @Produce     json
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized"})
		}
		if err := revokeToken(c.Request().Context(), rdb, claims); err != nil {
			logging.FromContext(c).WithError(err).Error("revoke token failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Internal Server Error"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
