// File: internal/service/meal.go
package service

import (
	"context"
	"errors"
	"fmt"

	"daily-diet/internal/database"
	"daily-diet/internal/model"
	"daily-diet/internal/store"
	"daily-diet/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// 以下變數為測試替換點
var (
	listMealsByUser = store.ListMealsByUser
	getMealForUser  = store.GetMealForUser
	lockMealByID    = store.LockMealByID
	createMeal      = store.CreateMeal
	updateMeal      = store.UpdateMeal
	deleteMeal      = store.DeleteMeal
	withTx          = database.WithTx
)

var validate = validator.New()

// MealLedger 管理使用者的餐點；所有操作都以呼叫者 id 限定範圍
type MealLedger struct {
	db database.DB
}

func NewMealLedger(db database.DB) *MealLedger {
	return &MealLedger{db: db}
}

// List 回傳呼叫者的所有餐點，依 meal_time 由新到舊
func (l *MealLedger) List(ctx context.Context, userID string) (meals []model.Meal, err error) {
	defer func() { record("list", err) }()

	meals, err = listMealsByUser(ctx, l.db, userID)
	if err != nil {
		return nil, internalError(err)
	}
	return meals, nil
}

// Get 回傳 id 相符且屬於呼叫者的餐點
func (l *MealLedger) Get(ctx context.Context, userID, mealID string) (meal *model.Meal, err error) {
	defer func() { record("get", err) }()

	if err = validateMealID(mealID); err != nil {
		return nil, err
	}
	meal, err = getMealForUser(ctx, l.db, mealID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, internalError(err)
	}
	return meal, nil
}

// Register 新增一筆屬於呼叫者的餐點
func (l *MealLedger) Register(ctx context.Context, userID string, in model.MealInput) (meal *model.Meal, err error) {
	defer func() { record("register", err) }()

	if err = validateMealInput(in); err != nil {
		return nil, err
	}
	meal, err = createMeal(ctx, l.db, &model.Meal{
		Name:        in.Name,
		Description: in.Description,
		InDiet:      in.InDiet,
		MealTime:    in.MealTime,
		UserID:      userID,
	})
	if err != nil {
		return nil, internalError(err)
	}
	return meal, nil
}

// Update 在同一個交易內鎖定餐點、確認擁有者後才更新；
// in.Description 為 nil 時不修改既有描述
func (l *MealLedger) Update(ctx context.Context, userID, mealID string, in model.MealInput) (meal *model.Meal, err error) {
	defer func() { record("update", err) }()

	if err = validateMealID(mealID); err != nil {
		return nil, err
	}
	if err = validateMealInput(in); err != nil {
		return nil, err
	}

	err = withTx(ctx, l.db, func(ctx context.Context, q database.Querier) error {
		current, err := lockOwnedMeal(ctx, q, userID, mealID)
		if err != nil {
			return err
		}
		current.Name = in.Name
		// description 未提供時保留原值
		if in.Description != nil {
			current.Description = in.Description
		}
		current.InDiet = in.InDiet
		current.MealTime = in.MealTime
		if err := updateMeal(ctx, q, current); err != nil {
			return err
		}
		meal = current
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return meal, nil
}

// Delete 在同一個交易內鎖定餐點、確認擁有者後才刪除
func (l *MealLedger) Delete(ctx context.Context, userID, mealID string) (err error) {
	defer func() { record("delete", err) }()

	if err = validateMealID(mealID); err != nil {
		return err
	}

	err = withTx(ctx, l.db, func(ctx context.Context, q database.Querier) error {
		if _, err := lockOwnedMeal(ctx, q, userID, mealID); err != nil {
			return err
		}
		return deleteMeal(ctx, q, mealID, userID)
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// Metrics 計算呼叫者餐點的統計值
func (l *MealLedger) Metrics(ctx context.Context, userID string) (metrics model.MealMetrics, err error) {
	defer func() { record("metrics", err) }()

	meals, err := listMealsByUser(ctx, l.db, userID)
	if err != nil {
		return model.MealMetrics{}, internalError(err)
	}
	return ComputeMealMetrics(meals), nil
}

func lockOwnedMeal(ctx context.Context, q database.Querier, userID, mealID string) (*model.Meal, error) {
	meal, err := lockMealByID(ctx, q, mealID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrForbidden
	}
	return meal, nil
}

// classify 保留領域錯誤，其餘一律視為內部錯誤
func classify(err error) error {
	if errors.Is(err, ErrMealNotFound) || errors.Is(err, ErrForbidden) {
		return err
	}
	// 鎖定後列仍消失代表同時被刪除
	if errors.Is(err, store.ErrNotFound) {
		return ErrMealNotFound
	}
	return internalError(err)
}

func validateMealID(mealID string) error {
	if _, err := uuid.Parse(mealID); err != nil {
		return validationError(fmt.Errorf("invalid meal id %q", mealID))
	}
	return nil
}

func validateMealInput(in model.MealInput) error {
	if err := validate.Struct(in); err != nil {
		return validationError(err)
	}
	if in.MealTime.IsZero() {
		return validationError(errors.New("meal_time is required"))
	}
	return nil
}

func record(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrValidation):
		outcome = "invalid"
	case errors.Is(err, ErrMealNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrForbidden):
		outcome = "forbidden"
	default:
		outcome = "error"
	}
	telemetry.RecordLedgerOperation(op, outcome)
}
