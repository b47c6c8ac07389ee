// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"strings"
	"testing"
)

// newTestStore opens a fresh in-memory sqlite Store for the test and closes it
// afterwards.
func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:test_" + name + "?mode=memory&cache=shared"
	st, err := NewStoreFromDSN(TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	bs, ok := st.(*BunStore)
	if !ok {
		t.Fatalf("store is not *BunStore")
	}
	return bs
}
