package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type Job struct {
	ID              int             `json:"id" db:"id"`
	CompanyID       int             `json:"company_id" db:"company_id"`
	CompanyName     string          `json:"company_name" db:"company_name"`
	Title           string          `json:"title" db:"title"`
	Slug            string          `json:"slug" db:"slug"`
	Description     string          `json:"description" db:"description"`
	Requirements    []string        `json:"requirements" db:"requirements"`
	Benefits        []string        `json:"benefits" db:"benefits"`
	Skills          []string        `json:"skills" db:"skills"`
	Location        string          `json:"location" db:"location"`
	LocationType    LocationType    `json:"location_type" db:"location_type"`
	EmploymentType  EmploymentType  `json:"employment_type" db:"employment_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level" db:"experience_level"`
	SalaryMin       *int            `json:"salary_min" db:"salary_min"`
	SalaryMax       *int            `json:"salary_max" db:"salary_max"`
	SalaryCurrency  *string         `json:"salary_currency" db:"salary_currency"`
	ApplyURL        *string         `json:"apply_url" db:"apply_url"`
	IsEasyApply     bool            `json:"is_easy_apply" db:"is_easy_apply"`
	IsFeatured      bool            `json:"is_featured" db:"is_featured"`
	IsActive        bool            `json:"is_active" db:"is_active"`
	ContentHash     string          `json:"-" db:"content_hash"`
	Source          *string         `json:"source" db:"source"`
	SourceURL       *string         `json:"source_url" db:"source_url"`
	PostedAt        time.Time       `json:"posted_at" db:"posted_at"`
	ExpiresAt       *time.Time      `json:"expires_at" db:"expires_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// IsExpired reports whether the posting is past its expiry date at time now.
func (j *Job) IsExpired(now time.Time) bool {
	return j.ExpiresAt != nil && j.ExpiresAt.Before(now)
}

// ContentHash fingerprints a posting by its identity-defining fields.
// The three fields are normalized (trimmed, lowercased, internal whitespace
// collapsed) before hashing, so re-submissions that differ only in casing or
// whitespace map to the same fingerprint. Returns a hex-encoded SHA-256.
func ContentHash(title, companyName, description string) string {
	canonical := normalizeForHash(title) + "|" + normalizeForHash(companyName) + "|" + normalizeForHash(description)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func normalizeForHash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
