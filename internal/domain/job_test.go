package domain_test

import (
	"testing"
	"time"

	"github.com/joblens/joblens-backend/internal/domain"
)

func TestContentHash_Deterministic(t *testing.T) {
	a := domain.ContentHash("Go Engineer", "Acme", "Build services")
	b := domain.ContentHash("Go Engineer", "Acme", "Build services")
	if a != b {
		t.Errorf("same input produced different hashes: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256 (64 chars), got %d", len(a))
	}
}

// Whitespace and casing differences must dedup to the same fingerprint.
// This pins the normalization policy: trim, collapse internal whitespace,
// lowercase.
func TestContentHash_NormalizesWhitespaceAndCase(t *testing.T) {
	base := domain.ContentHash("Go Engineer", "Acme", "Build services")
	variants := []struct {
		title, company, desc string
	}{
		{"  Go Engineer  ", "Acme", "Build services"},
		{"go engineer", "ACME", "build services"},
		{"Go  Engineer", "Acme", "Build\n services"},
		{"Go\tEngineer", "Acme", "Build  services "},
	}
	for _, v := range variants {
		if got := domain.ContentHash(v.title, v.company, v.desc); got != base {
			t.Errorf("ContentHash(%q, %q, %q) differs from base", v.title, v.company, v.desc)
		}
	}
}

func TestContentHash_DistinguishesContent(t *testing.T) {
	base := domain.ContentHash("Go Engineer", "Acme", "Build services")
	different := []struct {
		title, company, desc string
	}{
		{"Go Engineer", "Acme", "Build other services"},
		{"Rust Engineer", "Acme", "Build services"},
		{"Go Engineer", "Globex", "Build services"},
	}
	for _, v := range different {
		if got := domain.ContentHash(v.title, v.company, v.desc); got == base {
			t.Errorf("ContentHash(%q, %q, %q) collided with base", v.title, v.company, v.desc)
		}
	}
}

// Field boundaries must not be ambiguous: moving a word across the
// title/company boundary changes the hash.
func TestContentHash_FieldBoundaries(t *testing.T) {
	a := domain.ContentHash("Go Engineer Acme", "Corp", "d")
	b := domain.ContentHash("Go Engineer", "Acme Corp", "d")
	if a == b {
		t.Error("field boundary ambiguity: different field splits produced the same hash")
	}
}

func TestJobIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	job := domain.Job{}
	if job.IsExpired(now) {
		t.Error("job without expires_at should never be expired")
	}
	job.ExpiresAt = &past
	if !job.IsExpired(now) {
		t.Error("job past expires_at should be expired")
	}
	job.ExpiresAt = &future
	if job.IsExpired(now) {
		t.Error("job before expires_at should not be expired")
	}
}
