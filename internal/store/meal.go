package store

import (
	"context"

	"daily-diet/internal/database"
	"daily-diet/internal/model"

	"github.com/jackc/pgx/v5"
)

const mealColumns = `id, name, description, in_diet, meal_time, user_id, created_at, updated_at`

func scanMeal(row pgx.Row, m *model.Meal) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.InDiet,
		&m.MealTime,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

// ListMealsByUser 依 meal_time 由新到舊列出使用者的所有餐點
func ListMealsByUser(ctx context.Context, db database.Querier, userID string) ([]model.Meal, error) {
	rows, err := db.Query(ctx,
		`SELECT `+mealColumns+`
		 FROM meals WHERE user_id = $1
		 ORDER BY meal_time DESC`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListMealsByUser", err)
	}
	defer rows.Close()

	meals := []model.Meal{}
	for rows.Next() {
		var m model.Meal
		if err := scanMeal(rows, &m); err != nil {
			return nil, wrap("ListMealsByUser", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListMealsByUser", err)
	}
	return meals, nil
}

// GetMealForUser 取得指定使用者擁有的餐點，非擁有者視為不存在
func GetMealForUser(ctx context.Context, db database.Querier, mealID, userID string) (*model.Meal, error) {
	row := db.QueryRow(ctx,
		`SELECT `+mealColumns+`
		 FROM meals WHERE id = $1 AND user_id = $2`,
		mealID,
		userID,
	)
	m := &model.Meal{}
	if err := scanMeal(row, m); err != nil {
		return nil, wrap("GetMealForUser", err)
	}
	return m, nil
}

// LockMealByID 以 FOR UPDATE 鎖定餐點列，須在交易中呼叫
func LockMealByID(ctx context.Context, db database.Querier, mealID string) (*model.Meal, error) {
	row := db.QueryRow(ctx,
		`SELECT `+mealColumns+`
		 FROM meals WHERE id = $1
		 FOR UPDATE`,
		mealID,
	)
	m := &model.Meal{}
	if err := scanMeal(row, m); err != nil {
		return nil, wrap("LockMealByID", err)
	}
	return m, nil
}

func CreateMeal(ctx context.Context, db database.Querier, m *model.Meal) (*model.Meal, error) {
	m.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO meals (id, name, description, in_diet, meal_time, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		m.ID,
		m.Name,
		m.Description,
		m.InDiet,
		m.MealTime,
		m.UserID,
	)
	if err := row.Scan(&m.CreatedAt); err != nil {
		return nil, wrap("CreateMeal", err)
	}
	return m, nil
}

// UpdateMeal 只更新可變欄位，並以 id 與 user_id 作為條件；
// id、user_id、created_at 不會被修改
func UpdateMeal(ctx context.Context, db database.Querier, m *model.Meal) error {
	row := db.QueryRow(ctx,
		`UPDATE meals
		 SET name = $1, description = $2, in_diet = $3, meal_time = $4, updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING updated_at`,
		m.Name,
		m.Description,
		m.InDiet,
		m.MealTime,
		m.ID,
		m.UserID,
	)
	if err := row.Scan(&m.UpdatedAt); err != nil {
		return wrap("UpdateMeal", err)
	}
	return nil
}

// DeleteMeal 刪除使用者擁有的餐點，沒有任何列被刪除時回傳 ErrNotFound
func DeleteMeal(ctx context.Context, db database.Querier, mealID, userID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM meals WHERE id = $1 AND user_id = $2`,
		mealID,
		userID,
	)
	if err != nil {
		return wrap("DeleteMeal", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteMeal", pgx.ErrNoRows)
	}
	return nil
}
