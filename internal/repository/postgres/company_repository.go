package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/repository"
)

// uniqueViolation is the Postgres error code raised by a unique constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type companyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT id, name, slug, is_verified, created_at, updated_at FROM companies WHERE slug = $1`
	err := r.db.GetContext(ctx, &company, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (name, slug, is_verified)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, company.Name, company.Slug, company.IsVerified).
		Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrCompanyExists
	}
	return err
}

// ResolveOrCreate is the race-safe find-or-create on slug. The insert uses
// ON CONFLICT DO NOTHING, so two callers hitting the same brand-new slug
// both end up with the single row that won; the slug unique constraint is
// the actual guard, not the preceding lookup.
func (r *companyRepository) ResolveOrCreate(ctx context.Context, name, slug string) (*domain.Company, error) {
	company, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	var created domain.Company
	query := `
		INSERT INTO companies (name, slug, is_verified)
		VALUES ($1, $2, false)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id, name, slug, is_verified, created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query, name, slug).Scan(
		&created.ID, &created.Name, &created.Slug, &created.IsVerified,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err == nil {
		return &created, nil
	}
	// No row returned means a concurrent insert won the conflict; re-fetch.
	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return r.GetBySlug(ctx, slug)
	}
	return nil, err
}
