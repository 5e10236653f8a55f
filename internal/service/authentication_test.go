package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"daily-diet/internal/database"
	"daily-diet/internal/model"
	"daily-diet/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	newTokenID = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser
	listMealsByUser = store.ListMealsByUser
	getMealForUser = store.GetMealForUser
	lockMealByID = store.LockMealByID
	createMeal = store.CreateMeal
	updateMeal = store.UpdateMeal
	deleteMeal = store.DeleteMeal
	withTx = database.WithTx
}

func setSecret(t *testing.T) {
	t.Helper()
	require.NoError(t, os.Setenv("JWT_SECRET", "test-secret"))
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("pw1234")
	require.NoError(t, err)
	u := model.User{PasswordHash: hash}

	require.NoError(t, AuthenticateUser(u, "pw1234"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(model.User{}, "pw1234"), ErrInvalidCredentials)
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)

	setSecret(t)
	fixed := time.Unix(1_700_000_000, 0)
	timeNow = func() time.Time { return fixed }
	newTokenID = func() string { return "jti-1" }

	tok, err := IssueAccessToken(model.User{ID: "u1", Email: "a@b.com"}, time.Hour)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, "jti-1", claims.ID)
	require.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := VerifyAccessToken("x")
	require.Error(t, err)

	setSecret(t)
	tok, err := IssueAccessToken(model.User{ID: "u1", Email: "a@b.com"}, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.NotEmpty(t, claims.ID)

	_, err = VerifyAccessToken("not-a-token")
	require.Error(t, err)

	t.Run("expired", func(t *testing.T) {
		timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		t.Cleanup(func() { timeNow = time.Now })
		old, err := IssueAccessToken(model.User{ID: "u1"}, time.Minute)
		require.NoError(t, err)
		_, err = VerifyAccessToken(old)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{UserID: "u1"})
		s, err := other.SignedString([]byte("other"))
		require.NoError(t, err)
		_, err = VerifyAccessToken(s)
		require.Error(t, err)
	})

	t.Run("non hmac method", func(t *testing.T) {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{UserID: "u1"})
		s, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = VerifyAccessToken(s)
		require.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		tok, err := IssueAccessToken(model.User{}, time.Minute)
		require.NoError(t, err)
		_, err = VerifyAccessToken(tok)
		require.ErrorContains(t, err, "no user id")
	})

	t.Run("parse error", func(t *testing.T) {
		parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
			return nil, errors.New("parse")
		}
		t.Cleanup(func() { parseWithClaims = jwt.ParseWithClaims })
		_, err := VerifyAccessToken(tok)
		require.EqualError(t, err, "parse")
	})
}
