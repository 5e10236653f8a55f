// File: internal/dto/meal_response.go
package dto

import "daily-diet/internal/model"

// swagger:model dto.MealListResponse
type MealListResponse struct {
	Meals []model.Meal `json:"meals"`
}

// swagger:model dto.MealResponse
type MealResponse struct {
	Meal model.Meal `json:"meal"`
}
