// File: internal/model/meal.go
package model

import "time"

type Meal struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	InDiet      bool       `db:"in_diet" json:"in_diet"`
	MealTime    time.Time  `db:"meal_time" json:"meal_time"`
	UserID      string     `db:"user_id" json:"user_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// MealInput 為新增與更新餐點時可由呼叫端設定的欄位
type MealInput struct {
	Name        string    `validate:"min=5,max=50"`
	Description *string   `validate:"omitempty,max=150"`
	InDiet      bool
	MealTime    time.Time
}

// MealMetrics 為使用者餐點的統計結果
type MealMetrics struct {
	TotalMeals         int `json:"totalMeals"`
	MealsInDietLength  int `json:"mealsInDietLength"`
	MealsOutDietLength int `json:"mealsOutDietLength"`
	BestOnDietSequence int `json:"bestOnDietSequence"`
}
