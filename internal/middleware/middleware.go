package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"daily-diet/internal/cache"
	"daily-diet/internal/dto"
	"daily-diet/internal/logging"
	"daily-diet/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token 並確認未被撤銷，通過後將 claims 放入 context
func RequireAuth(c cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := extractClaims(ctx)
			if err != nil {
				return err
			}

			revoked, err := service.IsTokenRevoked(ctx.Request().Context(), c, claims.ID)
			if err != nil {
				logging.FromContext(ctx).WithError(err).Error("revocation lookup failed")
				return ctx.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Internal Server Error"})
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			ctx.Set(ContextUserKey, claims)
			return next(ctx)
		}
	}
}

// CurrentUser 取得 RequireAuth 放入的 claims
func CurrentUser(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok
}
