package match

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/repository"
)

const (
	// CandidatePoolSize is how many recent active jobs feed one ranking pass.
	CandidatePoolSize = 50
	// TopK bounds the ranked list returned to the caller.
	TopK = 20

	experienceBonus = 0.15
	locationBonus   = 0.10

	excellentThreshold = 0.8
	goodThreshold      = 0.6

	candidateCacheKey = "jobs:feed:candidates"
	candidateCacheTTL = time.Minute
)

type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	jobRepo     repository.JobRepository
	cache       *redis.Client
}

func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	jobRepo repository.JobRepository,
	cache *redis.Client,
) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		cache:       cache,
	}
}

// JobFeedItem is a job in the matched feed, annotated with its score.
type JobFeedItem struct {
	*domain.Job
	MatchScore   float64  `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
}

// Score computes the compatibility of one job against one profile.
// Pure and deterministic; the result is always in [0, 1].
//
// The primary signal is the fraction of the job's skills the profile covers,
// so a short, well-matched skill list scores like a long, half-matched one.
// Exact experience-level match and a compatible location add bounded bonuses.
func Score(profile *domain.Profile, job *domain.Job) (float64, []string) {
	score := skillOverlap(profile.Skills, job.Skills)

	if profile.DesiredExperience != "" && profile.DesiredExperience == job.ExperienceLevel {
		score += experienceBonus
	}
	if locationCompatible(profile, job) {
		score += locationBonus
	}
	if score > 1 {
		score = 1
	}

	var reasons []string
	switch {
	case score >= excellentThreshold:
		reasons = append(reasons, "Excellent skill match")
	case score >= goodThreshold:
		reasons = append(reasons, "Good skill match")
	}
	if job.LocationType == domain.LocationRemote {
		reasons = append(reasons, "Remote position")
	}

	return score, reasons
}

// skillOverlap returns |profile ∩ job| / |job|, clamped to [0,1].
// Empty skill sets on either side contribute 0, never a division by zero.
func skillOverlap(profileSkills, jobSkills []string) float64 {
	if len(profileSkills) == 0 || len(jobSkills) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(profileSkills))
	for _, s := range profileSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	jobSet := make(map[string]struct{}, len(jobSkills))
	matched := 0
	for _, s := range jobSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if _, dup := jobSet[key]; dup {
			continue
		}
		jobSet[key] = struct{}{}
		if _, ok := have[key]; ok {
			matched++
		}
	}

	overlap := float64(matched) / float64(len(jobSet))
	if overlap > 1 {
		overlap = 1
	}
	return overlap
}

func locationCompatible(profile *domain.Profile, job *domain.Job) bool {
	// A remote preference is satisfied by any remote job, whatever its
	// literal location string says.
	if profile.WantsRemote() && job.LocationType == domain.LocationRemote {
		return true
	}
	if profile.DesiredLocationType != nil && *profile.DesiredLocationType == job.LocationType {
		return true
	}
	if profile.PreferredLocation != nil && *profile.PreferredLocation != "" &&
		strings.EqualFold(strings.TrimSpace(*profile.PreferredLocation), strings.TrimSpace(job.Location)) {
		return true
	}
	return false
}

// Rank scores every candidate job against the profile, sorts by score
// descending with a stable tie-break (equal scores keep their input order)
// and truncates to TopK. Scoring runs concurrently across jobs; each
// goroutine writes only its own slot, the sort is a single-threaded merge.
func Rank(profile *domain.Profile, jobs []*domain.Job) ([]*domain.MatchResult, error) {
	if profile == nil || profile.ID == 0 {
		return nil, fmt.Errorf("rank: profile: %w", domain.ErrMissingIdentifier)
	}
	for _, job := range jobs {
		if job == nil || job.ID == 0 {
			return nil, fmt.Errorf("rank: job: %w", domain.ErrMissingIdentifier)
		}
	}

	results := make([]*domain.MatchResult, len(jobs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers > 1 {
		var wg sync.WaitGroup
		chunk := (len(jobs) + workers - 1) / workers
		for start := 0; start < len(jobs); start += chunk {
			end := start + chunk
			if end > len(jobs) {
				end = len(jobs)
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					score, reasons := Score(profile, jobs[i])
					results[i] = &domain.MatchResult{Job: jobs[i], Score: score, Reasons: reasons}
				}
			}(start, end)
		}
		wg.Wait()
	} else {
		for i, job := range jobs {
			score, reasons := Score(profile, job)
			results[i] = &domain.MatchResult{Job: job, Score: score, Reasons: reasons}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > TopK {
		results = results[:TopK]
	}
	return results, nil
}

// GetFeed returns the ranked, annotated job feed for the given user.
func (uc *MatchUseCase) GetFeed(ctx context.Context, userID int) ([]*JobFeedItem, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := uc.candidateJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate jobs: %w", err)
	}

	results, err := Rank(profile, jobs)
	if err != nil {
		return nil, err
	}

	feed := make([]*JobFeedItem, 0, len(results))
	for _, r := range results {
		feed = append(feed, &JobFeedItem{
			Job:          r.Job,
			MatchScore:   r.Score,
			MatchReasons: r.Reasons,
		})
	}
	return feed, nil
}

// candidateJobs loads the recent active pool, going through the redis cache
// when one is wired. Ingestion and the expiration sweep invalidate the key,
// so a cached pool never outlives a change to the active job set by more
// than the TTL.
func (uc *MatchUseCase) candidateJobs(ctx context.Context) ([]*domain.Job, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, candidateCacheKey).Bytes(); err == nil {
			var jobs []*domain.Job
			if err := json.Unmarshal(raw, &jobs); err == nil {
				return jobs, nil
			}
		}
	}

	jobs, err := uc.jobRepo.ListActive(ctx, CandidatePoolSize)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(jobs); err == nil {
			uc.cache.Set(ctx, candidateCacheKey, raw, candidateCacheTTL)
		}
	}
	return jobs, nil
}

// InvalidateCandidateCache drops the cached candidate pool. Called after any
// write that changes the active job set.
func InvalidateCandidateCache(ctx context.Context, cache *redis.Client) {
	if cache != nil {
		cache.Del(ctx, candidateCacheKey)
	}
}
