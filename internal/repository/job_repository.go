package repository

import (
	"context"

	"github.com/joblens/joblens-backend/internal/domain"
)

type JobRepository interface {
	// Create inserts the job and fills ID/CreatedAt/UpdatedAt. Returns
	// domain.ErrJobExists when the content_hash unique constraint fires.
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int) (*domain.Job, error)
	GetByContentHash(ctx context.Context, hash string) (*domain.Job, error)
	// ListActive returns the most recently posted active jobs, newest first.
	ListActive(ctx context.Context, limit int) ([]*domain.Job, error)
	Deactivate(ctx context.Context, id int) error
	// DeactivateExpired flips is_active off for every job past its
	// expires_at and reports how many rows changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}
