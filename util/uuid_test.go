package util

import (
	"regexp"
	"strconv"
	"testing"
)

func TestNewID_Format(t *testing.T) {
	u := NewID()
	if u == "" {
		t.Fatal("expected non-empty id")
	}
	// simple regex for UUID v4 format
	r := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !r.MatchString(u) {
		t.Fatalf("id %s does not match v4 format", u)
	}
}

func TestUniqueID_SkipsTaken(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return strconv.Itoa(n)
	}
	taken := map[string]bool{"1": true, "2": true}
	id := UniqueID(gen, func(id string) bool { return taken[id] })
	if id != "3" {
		t.Fatalf("expected id 3, got %q", id)
	}
}
