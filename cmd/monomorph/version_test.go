package main

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	v := Version()
	if v == "" {
		t.Fatal("Version() is empty")
	}
	if !strings.Contains(v, strings.TrimSpace(embeddedVersion)) && !strings.HasPrefix(v, "v") {
		t.Errorf("Version() = %q, want it to carry %q", v, strings.TrimSpace(embeddedVersion))
	}
}
