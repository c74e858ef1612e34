package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrCompanyNotFound = errors.New("company not found")

	// ErrJobExists is returned by the job repository when an insert hits the
	// unique constraint on content_hash. The ingestion pipeline treats it as
	// a dedup outcome, not a failure.
	ErrJobExists = errors.New("job with this content hash already exists")

	// ErrCompanyExists signals a concurrent insert on the same company slug.
	// Callers recover by re-fetching the winning row.
	ErrCompanyExists = errors.New("company with this slug already exists")

	// ErrMissingIdentifier is returned when a profile or job without an ID
	// reaches a path that needs identity downstream.
	ErrMissingIdentifier = errors.New("entity has no identifier")

	ErrEmptyBatch = errors.New("import batch is empty")
)
