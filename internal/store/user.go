package store

import (
	"context"

	"daily-diet/internal/database"
	"daily-diet/internal/model"

	"github.com/google/uuid"
)

// newID 產生新的主鍵，測試可覆寫
var newID = uuid.NewString

func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

// CreateUser 產生 id 後寫入使用者；email 重複時回傳 ErrDuplicate
func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	u.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		u.ID,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}
