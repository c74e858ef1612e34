package sweep

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/joblens/joblens-backend/internal/repository"
	"github.com/joblens/joblens-backend/internal/usecase/match"
)

// SweepUseCase deactivates expired job postings. Jobs are never hard-deleted
// on expiry, only flipped inactive.
type SweepUseCase struct {
	jobRepo repository.JobRepository
	cache   *redis.Client
	logger  *zap.Logger
}

func NewSweepUseCase(jobRepo repository.JobRepository, cache *redis.Client, logger *zap.Logger) *SweepUseCase {
	return &SweepUseCase{jobRepo: jobRepo, cache: cache, logger: logger}
}

// DeactivateExpired marks every job past its expires_at as inactive and
// returns how many rows changed.
func (uc *SweepUseCase) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := uc.jobRepo.DeactivateExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired jobs: %w", err)
	}

	if count > 0 {
		match.InvalidateCandidateCache(ctx, uc.cache)
	}

	uc.logger.Info("expiration sweep finished", zap.Int64("deactivated", count))
	return count, nil
}
