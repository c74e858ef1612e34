package repository

import (
	"context"

	"github.com/joblens/joblens-backend/internal/domain"
)

type CompanyRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	// ResolveOrCreate returns the company with the given slug, creating it
	// (unverified) when absent. Safe under concurrent invocation for the
	// same slug: a lost insert race resolves to the winning row.
	ResolveOrCreate(ctx context.Context, name, slug string) (*domain.Company, error)
}
