// File: internal/handler/meals/meals.go
package meals

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"daily-diet/internal/dto"
	"daily-diet/internal/logging"
	"daily-diet/internal/middleware"
	"daily-diet/internal/model"
	"daily-diet/internal/service"

	"github.com/labstack/echo/v4"
)

// Ledger 為 handler 使用到的餐點操作，由 *service.MealLedger 實作
type Ledger interface {
	List(ctx context.Context, userID string) ([]model.Meal, error)
	Get(ctx context.Context, userID, mealID string) (*model.Meal, error)
	Register(ctx context.Context, userID string, in model.MealInput) (*model.Meal, error)
	Update(ctx context.Context, userID, mealID string, in model.MealInput) (*model.Meal, error)
	Delete(ctx context.Context, userID, mealID string) error
	Metrics(ctx context.Context, userID string) (model.MealMetrics, error)
}

// writeError 將服務層錯誤轉為 HTTP 回應；未知錯誤只記錄 log 不回傳細節
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
	case errors.Is(err, service.ErrMealNotFound):
		return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Not found meal"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "Unauthorized access"})
	default:
		logging.FromContext(c).WithError(err).Error("meal ledger failed")
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Internal Server Error"})
	}
}

func callerID(c echo.Context) (string, bool) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized"})
}

// bindMeal 解析並驗證請求，轉為 MealInput
func bindMeal(c echo.Context) (model.MealInput, error) {
	var req dto.MealRequest
	if err := c.Bind(&req); err != nil {
		return model.MealInput{}, fmt.Errorf("無效的表單資料: %v", err)
	}
	if err := c.Validate(&req); err != nil {
		return model.MealInput{}, err
	}
	mealTime, err := time.Parse(time.RFC3339, req.MealTime)
	if err != nil {
		return model.MealInput{}, fmt.Errorf("invalid meal_time: %v", err)
	}
	return model.MealInput{
		Name:        req.Name,
		Description: req.Description,
		InDiet:      *req.InDiet,
		MealTime:    mealTime,
	}, nil
}

// ListHandler 取得目前使用者的所有餐點
// @Summary     List meals
// @Description 依 meal_time 由新到舊排列
// @Tags        meals
// @Produce     json
// @Success     200 {object} dto.MealListResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals [get]
func ListHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		meals, err := l.List(c.Request().Context(), userID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, dto.MealListResponse{Meals: meals})
	}
}

// GetHandler 取得單筆餐點
// @Summary     Get a meal
// @Tags        meals
// @Produce     json
// @Param       id  path     string true "Meal ID"
// @Success     200 {object} dto.MealResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals/{id} [get]
func GetHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		meal, err := l.Get(c.Request().Context(), userID, c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, dto.MealResponse{Meal: *meal})
	}
}

// RegisterHandler 新增餐點
// @Summary     Register a meal
// @Tags        meals
// @Accept      json
// @Produce     json
// @Param       body body     dto.MealRequest true "餐點資料"
// @Success     201  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals/register [post]
func RegisterHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		in, err := bindMeal(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if _, err := l.Register(c.Request().Context(), userID, in); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Meal registered successfully"})
	}
}

// UpdateHandler 更新餐點
// @Summary     Update a meal
// @Tags        meals
// @Accept      json
// @Produce     json
// @Param       id   path     string          true "Meal ID"
// @Param       body body     dto.MealRequest true "餐點資料"
// @Success     201  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals/update/{id} [put]
func UpdateHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		in, err := bindMeal(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if _, err := l.Update(c.Request().Context(), userID, c.Param("id"), in); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Meal updated successfully"})
	}
}

// DeleteHandler 刪除餐點
// @Summary     Delete a meal
// @Tags        meals
// @Param       id  path string true "Meal ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals/{id} [delete]
func DeleteHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		if err := l.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// MetricsHandler 計算目前使用者的餐點統計
// @Summary     Meal metrics
// @Tags        meals
// @Produce     json
// @Success     200 {object} model.MealMetrics
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /meals/metrics [get]
func MetricsHandler(l Ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return unauthorized(c)
		}
		metrics, err := l.Metrics(c.Request().Context(), userID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, metrics)
	}
}
