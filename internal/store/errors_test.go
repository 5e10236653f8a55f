package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := wrap("Op", pgx.ErrNoRows)
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Op: not found")

	err = wrap("Op", &pgconn.PgError{Code: uniqueViolation})
	require.ErrorIs(t, err, ErrDuplicate)

	err = wrap("Op", &pgconn.PgError{Code: "23503"})
	require.False(t, errors.Is(err, ErrDuplicate))

	boom := errors.New("boom")
	err = wrap("Op", boom)
	require.ErrorIs(t, err, boom)
	require.EqualError(t, err, "Op: boom")
}
