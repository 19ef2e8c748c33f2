package database

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a store failure.
type Kind string

const (
	KindUnavailable  Kind = "unavailable"
	KindTableMissing Kind = "table_missing"
	KindQuery        Kind = "query"
)

const (
	pgUndefinedTable    = "42P01"
	mysqlNoSuchTable    = 1146
	sqliteNoSuchTable   = "no such table"
	genericTableMissing = "does not exist"
)

// StoreError is the only error shape that leaves the store boundary besides
// the repository's own sentinels.
type StoreError struct {
	Kind  Kind
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	if e == nil || e.Err == nil {
		return string(KindQuery)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Unavailable wraps a connection failure.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Kind: KindUnavailable, Err: err}
}

// Classify converts a driver error into a StoreError. Errors that are
// already classified pass through untouched.
func Classify(err error, table string) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	if isTableMissing(err) {
		return &StoreError{Kind: KindTableMissing, Table: table, Err: err}
	}
	return &StoreError{Kind: KindQuery, Table: table, Err: err}
}

func IsTableMissing(err error) bool {
	return kindOf(err) == KindTableMissing
}

func IsUnavailable(err error) bool {
	return kindOf(err) == KindUnavailable
}

func kindOf(err error) Kind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return ""
}

func isTableMissing(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoSuchTable
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, sqliteNoSuchTable) {
		return true
	}
	return strings.Contains(msg, "relation") && strings.Contains(msg, genericTableMissing)
}
