// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"daily-diet/internal/cache"
	"daily-diet/internal/database"
	"daily-diet/internal/handler"
	"daily-diet/internal/handler/auth"
	"daily-diet/internal/handler/meals"
	"daily-diet/internal/handler/users"
	"daily-diet/internal/middleware"
	"daily-diet/internal/service"
	"daily-diet/internal/telemetry"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokenTTL time.Duration) {
	requireAuth := middleware.RequireAuth(rdb)

	// 健康檢查與監控
	e.GET("/ping", handler.PingHandler(db, rdb))
	e.GET("/metrics", echo.WrapHandler(telemetry.Handler()))

	// 登入、登出
	e.POST("/auth/login", auth.LoginHandler(db, tokenTTL))
	e.POST("/auth/logout", auth.LogoutHandler(rdb), requireAuth)

	// 使用者
	e.POST("/users/register", users.RegisterHandler(db))
	e.GET("/users/protected", users.ProtectedHandler(), requireAuth)

	// 餐點，全部需要登入
	ledger := service.NewMealLedger(db)
	apiMeals := e.Group("/meals", requireAuth)
	apiMeals.GET("", meals.ListHandler(ledger))
	apiMeals.GET("/metrics", meals.MetricsHandler(ledger))
	apiMeals.GET("/:id", meals.GetHandler(ledger))
	apiMeals.POST("/register", meals.RegisterHandler(ledger))
	apiMeals.PUT("/update/:id", meals.UpdateHandler(ledger))
	apiMeals.DELETE("/:id", meals.DeleteHandler(ledger))
}
