package storage

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// Execer executes SQL statements. Both *sql.DB and *sql.Tx satisfy it, so
// the write helpers work inside and outside transactions.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ExecQuerier combines statement execution with sqlscan's query interface
// for helpers that both read and write.
type ExecQuerier interface {
	Execer
	sqlscan.Querier
}
