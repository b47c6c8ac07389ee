package model

import "testing"

func TestSnippetString_QuotesBothFields(t *testing.T) {
	s := Snippet{Keyword: "greet", Message: "hello \"world\""}
	want := `"greet": "hello \"world\""`
	if got := s.String(); got != want {
		t.Fatalf("unexpected String(): got %s want %s", got, want)
	}
}
