package repository

import (
	"context"

	"github.com/joblens/joblens-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
