package db

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/toeirei/snippets/internal/model"
)

// storeFactories runs the same behavioral checks against the real sqlite
// store and the in-memory fake so the two cannot drift apart.
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"sqlite": func(t *testing.T) Store { return newTestStore(t) },
		"fake":   func(t *testing.T) Store { return NewFakeStore() },
	}
}

func TestStore_PutThenGetReturnsExactText(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			text := "multi\nline 'text' with \"quotes\" and ünïcode"
			got, err := st.Put(ctx, "k", text)
			if err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if got.Keyword != "k" || got.Message != text {
				t.Fatalf("Put returned %+v", got)
			}
			sn, err := st.Get(ctx, "k")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if sn.Message != text {
				t.Fatalf("expected %q, got %q", text, sn.Message)
			}
		})
	}
}

func TestStore_PutTwiceKeepsLatest(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			if _, err := st.Put(ctx, "k", "first"); err != nil {
				t.Fatalf("first Put failed: %v", err)
			}
			if _, err := st.Put(ctx, "k", "second"); err != nil {
				t.Fatalf("second Put failed: %v", err)
			}
			sn, err := st.Get(ctx, "k")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if sn.Message != "second" {
				t.Fatalf("expected latest message, got %q", sn.Message)
			}
			keys, err := st.Keywords(ctx)
			if err != nil {
				t.Fatalf("Keywords failed: %v", err)
			}
			if len(keys) != 1 {
				t.Fatalf("expected one row after upsert, got %v", keys)
			}
		})
	}
}

func TestStore_RejectsTextThatCannotRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		keyword string
		message string
	}{
		{"nul in message", "k", "a\x00b"},
		{"invalid utf8 in message", "k", "caf\xe9"},
		{"nul in keyword", "k\x00", "v"},
		{"invalid utf8 in keyword", "k\xff", "v"},
	}
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			for _, c := range cases {
				t.Run(c.name, func(t *testing.T) {
					if _, err := st.Put(ctx, c.keyword, c.message); !errors.Is(err, ErrInvalidText) {
						t.Fatalf("Put: expected ErrInvalidText, got %v", err)
					}
					batch := []model.Snippet{{Keyword: "ok", Message: "fine"}, {Keyword: c.keyword, Message: c.message}}
					if _, err := st.Import(ctx, batch, true); !errors.Is(err, ErrInvalidText) {
						t.Fatalf("Import: expected ErrInvalidText, got %v", err)
					}
				})
			}
			keys, err := st.Keywords(ctx)
			if err != nil {
				t.Fatalf("Keywords failed: %v", err)
			}
			if len(keys) != 0 {
				t.Fatalf("rejected text must not be stored, got %q", keys)
			}
		})
	}
}

func TestStore_InvalidLookupsDoNotMatchCleanedText(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			if _, err := st.Put(ctx, "k\uFFFD", "ab"); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if _, err := st.Get(ctx, "k\xff"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for invalid keyword, got %v", err)
			}
			res, err := st.Search(ctx, "a\x00b")
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(res) != 0 {
				t.Fatalf("expected no match for NUL query, got %v", res)
			}
		})
	}
}

func TestStore_GetUnknownReturnsErrNotFound(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			_, err := mk(t).Get(context.Background(), "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStore_KeywordsSortedAscending(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			for _, k := range []string{"b", "a", "c"} {
				if _, err := st.Put(ctx, k, "x"); err != nil {
					t.Fatalf("Put(%s) failed: %v", k, err)
				}
			}
			got, err := st.Keywords(ctx)
			if err != nil {
				t.Fatalf("Keywords failed: %v", err)
			}
			want := []string{"a", "b", "c"}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("unexpected keywords: got %#v want %#v", got, want)
			}
		})
	}
}

func TestStore_KeywordsEmpty(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			got, err := mk(t).Keywords(context.Background())
			if err != nil {
				t.Fatalf("Keywords failed: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected no keywords, got %#v", got)
			}
		})
	}
}

func TestStore_Search(t *testing.T) {
	seed := map[string]string{
		"greet":   "Hello world",
		"shout":   "HELLO WORLD",
		"percent": "100% done",
		"under":   "snake_case name",
		"other":   "nothing to see",
	}
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring", "world", []string{"greet"}},
		{"case sensitive", "HELLO", []string{"shout"}},
		{"no match", "absent", []string{}},
		{"percent is literal", "%", []string{"percent"}},
		{"underscore is literal", "_", []string{"under"}},
		{"quote does not break query", "' OR '1'='1", []string{}},
	}

	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			for k, v := range seed {
				if _, err := st.Put(ctx, k, v); err != nil {
					t.Fatalf("Put(%s) failed: %v", k, err)
				}
			}
			for _, c := range cases {
				t.Run(c.name, func(t *testing.T) {
					res, err := st.Search(ctx, c.query)
					if err != nil {
						t.Fatalf("Search failed: %v", err)
					}
					got := make([]string, 0, len(res))
					for _, s := range res {
						if s.Message != seed[s.Keyword] {
							t.Fatalf("message mismatch for %s: %q", s.Keyword, s.Message)
						}
						got = append(got, s.Keyword)
					}
					if !reflect.DeepEqual(got, c.want) {
						t.Fatalf("query %q: got %#v want %#v", c.query, got, c.want)
					}
				})
			}
		})
	}
}

func TestStore_ImportIntegrateAndOverwrite(t *testing.T) {
	for name, mk := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			st := mk(t)
			ctx := context.Background()
			if _, err := st.Put(ctx, "keep", "original"); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			batch := []model.Snippet{
				{Keyword: "keep", Message: "from backup"},
				{Keyword: "new", Message: "fresh"},
			}

			res, err := st.Import(ctx, batch, false)
			if err != nil {
				t.Fatalf("Import failed: %v", err)
			}
			if res.Written != 1 || res.Skipped != 1 {
				t.Fatalf("unexpected integrate result: %+v", res)
			}
			if sn, _ := st.Get(ctx, "keep"); sn.Message != "original" {
				t.Fatalf("integrate overwrote existing message: %q", sn.Message)
			}

			res, err = st.Import(ctx, batch, true)
			if err != nil {
				t.Fatalf("Import(overwrite) failed: %v", err)
			}
			if res.Written != 2 {
				t.Fatalf("unexpected overwrite result: %+v", res)
			}
			if sn, _ := st.Get(ctx, "keep"); sn.Message != "from backup" {
				t.Fatalf("overwrite did not replace message: %q", sn.Message)
			}

			// Re-importing identical content still counts as written.
			res, err = st.Import(ctx, batch, true)
			if err != nil {
				t.Fatalf("second Import(overwrite) failed: %v", err)
			}
			if res.Written != 2 || res.Skipped != 0 {
				t.Fatalf("unexpected repeated overwrite result: %+v", res)
			}
		})
	}
}

func TestStore_AllOrderedByKeyword(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		if _, err := st.Put(ctx, k, k+"-text"); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	all, err := st.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	want := []model.Snippet{
		{Keyword: "alpha", Message: "alpha-text"},
		{Keyword: "mid", Message: "mid-text"},
		{Keyword: "zeta", Message: "zeta-text"},
	}
	if !reflect.DeepEqual(all, want) {
		t.Fatalf("unexpected All(): %#v", all)
	}
}

func TestFakeStore_ErrPropagates(t *testing.T) {
	boom := errors.New("boom")
	f := &FakeStore{Err: boom}
	ctx := context.Background()
	if _, err := f.Put(ctx, "k", "v"); !errors.Is(err, boom) {
		t.Fatalf("Put: expected boom, got %v", err)
	}
	if _, err := f.Search(ctx, "v"); !errors.Is(err, boom) {
		t.Fatalf("Search: expected boom, got %v", err)
	}
	if err := f.Maintain(ctx, MaintenanceOptions{}); !errors.Is(err, boom) {
		t.Fatalf("Maintain: expected boom, got %v", err)
	}
}
