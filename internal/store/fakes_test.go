package store

import (
	"time"

	"daily-diet/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 依 Scan 目標數量模擬不同查詢：
// 8 → 完整 meal 欄位，4 → 完整 user 欄位，1 → RETURNING 單一時間欄位
type fakeRow struct {
	scanErr error
	meal    *model.Meal
	user    *model.User
	ts      time.Time
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 8:
		fillMeal(dest, *r.meal)
	case 4:
		u := r.user
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*time.Time) = u.CreatedAt
	case 1:
		switch d := dest[0].(type) {
		case *time.Time:
			*d = r.ts
		case **time.Time:
			ts := r.ts
			*d = &ts
		default:
			panic("fakeRow.Scan: unexpected dest type")
		}
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}

func fillMeal(dest []any, m model.Meal) {
	*dest[0].(*string) = m.ID
	*dest[1].(*string) = m.Name
	*dest[2].(**string) = m.Description
	*dest[3].(*bool) = m.InDiet
	*dest[4].(*time.Time) = m.MealTime
	*dest[5].(*string) = m.UserID
	*dest[6].(*time.Time) = m.CreatedAt
	*dest[7].(**time.Time) = m.UpdatedAt
}

// fakeRows 實作 pgx.Rows，用於模擬多筆 meal 掃描
type fakeRows struct {
	data    []model.Meal
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool {
	ok := r.idx < len(r.data)
	if ok {
		r.idx++
	}
	return ok
}
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillMeal(dest, r.data[r.idx-1])
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
