// File: internal/dto/meal_request.go
package dto

// MealRequest 新增與更新餐點共用的請求格式
// swagger:model dto.MealRequest
type MealRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=5,max=50" example:"Grilled chicken salad"`
	// 省略或 null 視為未提供：新增時存 NULL，更新時保留原值；空字串會寫入空字串
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=150" example:"Lunch at the office"`
	InDiet      *bool   `json:"in_diet" form:"in_diet" validate:"required" example:"true"`
	MealTime    string  `json:"meal_time" form:"meal_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2024-11-02T12:30:00Z"`
}
