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

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	j.id, j.company_id, c.name AS company_name, j.title, j.slug, j.description,
	j.requirements, j.benefits, j.skills, j.location,
	j.location_type, j.employment_type, j.experience_level,
	j.salary_min, j.salary_max, j.salary_currency, j.apply_url,
	j.is_easy_apply, j.is_featured, j.is_active, j.content_hash,
	j.source, j.source_url, j.posted_at, j.expires_at, j.created_at, j.updated_at
`

func scanJob(row *sql.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.CompanyName, &job.Title, &job.Slug, &job.Description,
		pq.Array(&job.Requirements), pq.Array(&job.Benefits), pq.Array(&job.Skills), &job.Location,
		&job.LocationType, &job.EmploymentType, &job.ExperienceLevel,
		&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency, &job.ApplyURL,
		&job.IsEasyApply, &job.IsFeatured, &job.IsActive, &job.ContentHash,
		&job.Source, &job.SourceURL, &job.PostedAt, &job.ExpiresAt, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			company_id, title, slug, description, requirements, benefits, skills,
			location, location_type, employment_type, experience_level,
			salary_min, salary_max, salary_currency, apply_url,
			is_easy_apply, is_featured, is_active, content_hash,
			source, source_url, posted_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		job.CompanyID, job.Title, job.Slug, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Benefits), pq.Array(job.Skills),
		job.Location, job.LocationType, job.EmploymentType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, job.SalaryCurrency, job.ApplyURL,
		job.IsEasyApply, job.IsFeatured, job.IsActive, job.ContentHash,
		job.Source, job.SourceURL, job.PostedAt, job.ExpiresAt,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrJobExists
	}
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id int) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id WHERE j.id = $1`
	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) GetByContentHash(ctx context.Context, hash string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j JOIN companies c ON c.id = j.company_id WHERE j.content_hash = $1`
	job, err := scanJob(r.db.QueryRowContext(ctx, query, hash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) ListActive(ctx context.Context, limit int) ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.is_active = true AND (j.expires_at IS NULL OR j.expires_at > NOW())
		ORDER BY j.posted_at DESC, j.id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(
			&job.ID, &job.CompanyID, &job.CompanyName, &job.Title, &job.Slug, &job.Description,
			pq.Array(&job.Requirements), pq.Array(&job.Benefits), pq.Array(&job.Skills), &job.Location,
			&job.LocationType, &job.EmploymentType, &job.ExperienceLevel,
			&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency, &job.ApplyURL,
			&job.IsEasyApply, &job.IsFeatured, &job.IsActive, &job.ContentHash,
			&job.Source, &job.SourceURL, &job.PostedAt, &job.ExpiresAt, &job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE jobs SET is_active = false, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE jobs SET is_active = false, updated_at = NOW()
		WHERE is_active = true AND expires_at IS NOT NULL AND expires_at < NOW()
	`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
