package database

import (
	"context"
	"fmt"
)

// WithTx 開啟交易並以交易 handle 執行 fn。
// fn 成功則 commit；回傳錯誤或 panic 時 rollback，panic 會再次拋出。
func WithTx(ctx context.Context, db DB, fn func(ctx context.Context, q Querier) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}
