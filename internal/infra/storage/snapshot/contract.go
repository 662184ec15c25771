package snapshot

import (
	"context"
	"database/sql"
)

// Querier чтение из БД. Поддерживает *sql.DB и *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// TxBeginner начало транзакции для атомарной замены снапшота
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
