// File: internal/service/metrics.go
package service

import "daily-diet/internal/model"

// ComputeMealMetrics 以單次走訪計算統計值。
// meals 須已依 meal_time 由新到舊排序；連續 in_diet 的最長長度依此順序計算，
// 遇到不在飲食計畫內的餐點時目前連續數歸零。
func ComputeMealMetrics(meals []model.Meal) model.MealMetrics {
	var m model.MealMetrics
	current := 0
	for _, meal := range meals {
		m.TotalMeals++
		if meal.InDiet {
			m.MealsInDietLength++
			current++
			if current > m.BestOnDietSequence {
				m.BestOnDietSequence = current
			}
			continue
		}
		m.MealsOutDietLength++
		current = 0
	}
	return m
}
