package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_TypedDriverErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"postgres unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key value"}},
		{"wrapped postgres", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'PRIMARY'"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(MapDBError(c.err), ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate for %s", c.name)
			}
		})
	}
}

func TestMapDBError_DuplicateStrings(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"sqlite unique constraint", errors.New("constraint failed: UNIQUE constraint failed: snippets.keyword (1555)")},
		{"generic duplicate word", errors.New("duplicate row")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(MapDBError(c.err), ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate for case %s", c.name)
			}
		})
	}
}

func TestMapDBError_NonDuplicatePassthrough(t *testing.T) {
	if MapDBError(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	e := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	if got := MapDBError(e); got != error(e) {
		t.Fatalf("expected original error to be returned unchanged, got: %v", got)
	}
	plain := errors.New("some network error")
	if got := MapDBError(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
