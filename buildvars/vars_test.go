package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected dev got %s", got)
	}
	Version = "v1.0.0"
	if got := VersionOrDefault("dev"); got != "v1.0.0" {
		t.Fatalf("expected v1.0.0 got %s", got)
	}
}
