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

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, skills, preferred_location, desired_experience,
			desired_location_type, desired_employment_type
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, pq.Array(profile.Skills), profile.PreferredLocation,
		profile.DesiredExperience, profile.DesiredLocationType, profile.DesiredEmploymentType,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	return r.get(ctx, `WHERE user_id = $1`, userID)
}

func (r *profileRepository) get(ctx context.Context, where string, arg interface{}) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, user_id, skills, preferred_location, desired_experience,
		       desired_location_type, desired_employment_type,
		       created_at, updated_at
		FROM profiles ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&profile.ID, &profile.UserID, pq.Array(&profile.Skills),
		&profile.PreferredLocation, &profile.DesiredExperience,
		&profile.DesiredLocationType, &profile.DesiredEmploymentType,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET skills = $1, preferred_location = $2, desired_experience = $3,
		    desired_location_type = $4, desired_employment_type = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		pq.Array(profile.Skills), profile.PreferredLocation, profile.DesiredExperience,
		profile.DesiredLocationType, profile.DesiredEmploymentType, profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}
