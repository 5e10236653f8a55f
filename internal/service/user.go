// File: internal/service/user.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"daily-diet/internal/database"
	"daily-diet/internal/model"
	"daily-diet/internal/store"
)

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// NormalizeEmail 將 email 去除空白並轉為小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser 建立新使用者，email 已存在時回傳 ErrUserExists 且不修改既有資料
func RegisterUser(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)

	_, err := getUserByEmail(ctx, db, email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return nil, internalError(err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, internalError(err)
	}

	user, err := createUser(ctx, db, &model.User{Email: email, PasswordHash: hash})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, internalError(err)
	}
	return user, nil
}

// Login 驗證帳號密碼並發行存取令牌；
// 使用者不存在與密碼錯誤回傳相同的 ErrInvalidCredentials
func Login(ctx context.Context, db database.Querier, email, password string, ttl time.Duration) (string, error) {
	user, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", internalError(err)
	}

	if err := AuthenticateUser(*user, password); err != nil {
		return "", err
	}

	token, err := IssueAccessToken(*user, ttl)
	if err != nil {
		return "", internalError(err)
	}
	return token, nil
}
