package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

func (s PostgresSettings) GetUrl() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", s.User, s.Password, s.Host, s.Port, s.DBName)

	if !s.SSlEnabled {
		url += "?sslmode=disable"
	}

	return url
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type QueryExecuter interface {
	Querier
	Executor
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type QueryTxBeginner interface {
	Querier
	TxBeginner
}
