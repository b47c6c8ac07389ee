// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/toeirei/snippets/internal/model"
	"github.com/uptrace/bun"
)

// BunStore is the Store implementation shared by all SQL backends.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// BunDB exposes the underlying *bun.DB, mainly for tests and maintenance.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// DBType reports the configured database type.
func (s *BunStore) DBType() string { return s.dbType }

// Close releases the underlying connection pool.
func (s *BunStore) Close() error {
	return s.bun.Close()
}

// upsert applies the dialect's conflict clause so that an existing keyword
// has its message replaced in the same statement.
func (s *BunStore) upsert(q *bun.InsertQuery) *bun.InsertQuery {
	if s.dbType == TypeMySQL {
		return q.On("DUPLICATE KEY UPDATE").Set("message = VALUES(message)")
	}
	return q.On("CONFLICT (keyword) DO UPDATE").Set("message = EXCLUDED.message")
}

// insertIfAbsent leaves existing rows untouched.
func (s *BunStore) insertIfAbsent(q *bun.InsertQuery) *bun.InsertQuery {
	if s.dbType == TypeMySQL {
		return q.Ignore()
	}
	return q.On("CONFLICT (keyword) DO NOTHING")
}

// containsExpr is the case-sensitive substring predicate for the dialect.
// None of the variants treat LIKE wildcards specially.
func (s *BunStore) containsExpr() string {
	switch s.dbType {
	case TypePostgres:
		return "strpos(message, ?) > 0"
	case TypeMySQL:
		return "LOCATE(BINARY ?, message) > 0"
	default:
		return "instr(message, ?) > 0"
	}
}

// keywordOrder sorts bytewise on every engine. Postgres would otherwise use
// the database locale; the MySQL column is utf8mb4_bin and SQLite's default
// collation is BINARY.
func (s *BunStore) keywordOrder() string {
	if s.dbType == TypePostgres {
		return `keyword COLLATE "C" ASC`
	}
	return "keyword ASC"
}

// searchQuery selects the snippets whose message contains substring.
func (s *BunStore) searchQuery(db bun.IDB, rows *[]SnippetModel, substring string) *bun.SelectQuery {
	return db.NewSelect().Model(rows).Where(s.containsExpr(), substring).OrderExpr(s.keywordOrder())
}

// Put stores the snippet, replacing the message if the keyword exists.
func (s *BunStore) Put(ctx context.Context, keyword, message string) (model.Snippet, error) {
	if err := validateText(keyword, message); err != nil {
		return model.Snippet{}, err
	}
	m := &SnippetModel{Keyword: keyword, Message: message}
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.upsert(tx.NewInsert().Model(m)).Exec(ctx)
		return err
	})
	if err != nil {
		return model.Snippet{}, fmt.Errorf("failed to store snippet %q: %w", keyword, err)
	}
	dbLogf("db: stored snippet %q (%d bytes)", keyword, len(message))
	return snippetModelToModel(*m), nil
}

// Get returns the snippet stored under keyword or ErrNotFound.
func (s *BunStore) Get(ctx context.Context, keyword string) (model.Snippet, error) {
	// Stored keywords always pass validateText, so nothing can match.
	if validateText(keyword, "") != nil {
		return model.Snippet{}, ErrNotFound
	}
	var m SnippetModel
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&m).Where("keyword = ?", keyword).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Snippet{}, ErrNotFound
		}
		return model.Snippet{}, fmt.Errorf("failed to retrieve snippet %q: %w", keyword, err)
	}
	return snippetModelToModel(m), nil
}

// Keywords returns all stored keywords in ascending order.
func (s *BunStore) Keywords(ctx context.Context) ([]string, error) {
	keywords := []string{}
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model((*SnippetModel)(nil)).Column("keyword").OrderExpr(s.keywordOrder()).Scan(ctx, &keywords)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	return keywords, nil
}

// Search returns every snippet whose message contains substring.
func (s *BunStore) Search(ctx context.Context, substring string) ([]model.Snippet, error) {
	if validateText("", substring) != nil {
		return []model.Snippet{}, nil
	}
	var rows []SnippetModel
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return s.searchQuery(tx, &rows, substring).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search snippets: %w", err)
	}
	return snippetModelsToModels(rows), nil
}

// All returns every snippet ordered by keyword.
func (s *BunStore) All(ctx context.Context) ([]model.Snippet, error) {
	var rows []SnippetModel
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).OrderExpr(s.keywordOrder()).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snippets: %w", err)
	}
	return snippetModelsToModels(rows), nil
}

// Import writes all snippets in a single transaction. Nothing is written
// when any snippet fails validation. In overwrite mode every snippet counts
// as written: MySQL reports zero affected rows for an unchanged upsert.
func (s *BunStore) Import(ctx context.Context, snippets []model.Snippet, overwrite bool) (ImportResult, error) {
	for _, sn := range snippets {
		if err := validateText(sn.Keyword, sn.Message); err != nil {
			return ImportResult{}, fmt.Errorf("snippet %q: %w", sn.Keyword, err)
		}
	}
	var res ImportResult
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res = ImportResult{}
		for _, sn := range snippets {
			q := tx.NewInsert().Model(&SnippetModel{Keyword: sn.Keyword, Message: sn.Message})
			if overwrite {
				q = s.upsert(q)
			} else {
				q = s.insertIfAbsent(q)
			}
			r, err := q.Exec(ctx)
			if err != nil {
				return fmt.Errorf("snippet %q: %w", sn.Keyword, MapDBError(err))
			}
			if overwrite {
				res.Written++
				continue
			}
			if n, err := r.RowsAffected(); err == nil && n == 0 {
				res.Skipped++
				continue
			}
			res.Written++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to import snippets: %w", err)
	}
	dbLogf("db: imported %d snippets (%d skipped)", res.Written, res.Skipped)
	return res, nil
}

// --- Mapping helpers ---

func snippetModelToModel(m SnippetModel) model.Snippet {
	return model.Snippet{Keyword: m.Keyword, Message: m.Message}
}

func snippetModelsToModels(rows []SnippetModel) []model.Snippet {
	out := make([]model.Snippet, 0, len(rows))
	for _, r := range rows {
		out = append(out, snippetModelToModel(r))
	}
	return out
}
