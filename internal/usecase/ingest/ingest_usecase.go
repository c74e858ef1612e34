package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/repository"
	"github.com/joblens/joblens-backend/internal/usecase/match"
	"github.com/joblens/joblens-backend/pkg/slug"
)

// importWorkers bounds how many records are processed concurrently.
// Records are independent; the company slug race is handled at the storage
// layer, so concurrent rows referencing the same new company are safe.
const importWorkers = 4

type IngestUseCase struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	cache       *redis.Client
	logger      *zap.Logger
	validate    *validator.Validate
}

func NewIngestUseCase(
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
	cache *redis.Client,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		cache:       cache,
		logger:      logger,
		validate:    validator.New(),
	}
}

// ImportRecord is one externally sourced job row. Only title and company
// name are required; everything else is best-effort.
type ImportRecord struct {
	Title           string   `json:"title" validate:"required"`
	CompanyName     string   `json:"companyName" validate:"required"`
	CompanySlug     string   `json:"companySlug"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
	Skills          []string `json:"skills"`
	Location        string   `json:"location"`
	LocationType    string   `json:"locationType"`
	EmploymentType  string   `json:"employmentType"`
	ExperienceLevel string   `json:"experienceLevel"`
	SalaryMin       *int     `json:"salaryMin"`
	SalaryMax       *int     `json:"salaryMax"`
	SalaryCurrency  *string  `json:"salaryCurrency"`
	ApplyURL        *string  `json:"applyUrl"`
	Source          *string  `json:"source"`
	SourceURL       *string  `json:"sourceUrl"`
}

// ImportReport itemizes what happened to every row of a batch. No row
// vanishes silently: each one is counted as inserted, deduplicated or
// reported in Errors. Warnings carry non-fatal normalization fallbacks
// (unrecognized enum values defaulted).
type ImportReport struct {
	Total        int      `json:"total"`
	Inserted     int      `json:"inserted"`
	Deduplicated int      `json:"deduplicated"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
}

type rowOutcome struct {
	inserted bool
	deduped  bool
	errMsg   string
	warnings []string
}

// ImportBatch runs the at-most-once-insert, best-effort-per-row pipeline.
// A failure on one record degrades to that record's error entry and never
// aborts the batch; re-running the same batch is idempotent thanks to
// dedup by content hash.
func (uc *IngestUseCase) ImportBatch(ctx context.Context, records []ImportRecord) (*ImportReport, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	batchID := uuid.NewString()
	uc.logger.Info("import batch started",
		zap.String("batch_id", batchID),
		zap.Int("records", len(records)),
	)

	outcomes := make([]rowOutcome, len(records))

	var wg sync.WaitGroup
	indexes := make(chan int)
	for w := 0; w < importWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = uc.processRecord(ctx, i, records[i])
			}
		}()
	}
	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	report := &ImportReport{Total: len(records)}
	for _, out := range outcomes {
		switch {
		case out.errMsg != "":
			report.Errors = append(report.Errors, out.errMsg)
		case out.deduped:
			report.Deduplicated++
		case out.inserted:
			report.Inserted++
		}
		report.Warnings = append(report.Warnings, out.warnings...)
	}

	if report.Inserted > 0 {
		match.InvalidateCandidateCache(ctx, uc.cache)
	}

	uc.logger.Info("import batch finished",
		zap.String("batch_id", batchID),
		zap.Int("total", report.Total),
		zap.Int("inserted", report.Inserted),
		zap.Int("deduplicated", report.Deduplicated),
		zap.Int("errors", len(report.Errors)),
	)
	return report, nil
}

// processRecord handles one row in isolation. Panics and storage errors are
// converted into the row's error slot.
func (uc *IngestUseCase) processRecord(ctx context.Context, idx int, rec ImportRecord) (out rowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = rowOutcome{errMsg: fmt.Sprintf("record %d: panic: %v", idx, r)}
			uc.logger.Error("import record panicked", zap.Int("index", idx), zap.Any("panic", r))
		}
	}()

	if err := uc.validate.Struct(rec); err != nil {
		return rowOutcome{errMsg: fmt.Sprintf("record %d: %s", idx, validationMessage(err))}
	}

	hash := domain.ContentHash(rec.Title, rec.CompanyName, rec.Description)

	_, err := uc.jobRepo.GetByContentHash(ctx, hash)
	switch {
	case err == nil:
		return rowOutcome{deduped: true}
	case !errors.Is(err, domain.ErrJobNotFound):
		return rowOutcome{errMsg: fmt.Sprintf("record %d: dedup lookup failed: %v", idx, err)}
	}

	companySlug := rec.CompanySlug
	if companySlug == "" {
		companySlug = slug.Make(rec.CompanyName)
	}
	company, err := uc.companyRepo.ResolveOrCreate(ctx, rec.CompanyName, companySlug)
	if err != nil {
		return rowOutcome{errMsg: fmt.Sprintf("record %d: failed to resolve company %q: %v", idx, rec.CompanyName, err)}
	}

	job, warnings := uc.buildJob(idx, rec, company.ID, hash)
	out.warnings = warnings

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		// A concurrent importer landed the same posting between our dedup
		// lookup and the insert. The unique constraint makes this a dedup
		// outcome, not a failure.
		if errors.Is(err, domain.ErrJobExists) {
			out.deduped = true
			return out
		}
		out.errMsg = fmt.Sprintf("record %d: failed to insert job: %v", idx, err)
		return out
	}

	out.inserted = true
	return out
}

// buildJob maps an import record onto a domain.Job, normalizing the enum
// fields. Unrecognized values take the documented defaults and produce a
// warning so the permissive fallback stays visible in the report.
func (uc *IngestUseCase) buildJob(idx int, rec ImportRecord, companyID int, hash string) (*domain.Job, []string) {
	var warnings []string

	locationType := domain.DefaultLocationType
	if rec.LocationType != "" {
		var ok bool
		if locationType, ok = domain.NormalizeLocationType(rec.LocationType); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"record %d: unrecognized locationType %q, defaulted to %s", idx, rec.LocationType, locationType))
		}
	}

	employmentType := domain.DefaultEmploymentType
	if rec.EmploymentType != "" {
		var ok bool
		if employmentType, ok = domain.NormalizeEmploymentType(rec.EmploymentType); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"record %d: unrecognized employmentType %q, defaulted to %s", idx, rec.EmploymentType, employmentType))
		}
	}

	experienceLevel := domain.DefaultExperienceLevel
	if rec.ExperienceLevel != "" {
		var ok bool
		if experienceLevel, ok = domain.NormalizeExperienceLevel(rec.ExperienceLevel); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"record %d: unrecognized experienceLevel %q, defaulted to %s", idx, rec.ExperienceLevel, experienceLevel))
		}
	}

	return &domain.Job{
		CompanyID:       companyID,
		Title:           rec.Title,
		Slug:            slug.Make(rec.Title),
		Description:     rec.Description,
		Requirements:    rec.Requirements,
		Benefits:        rec.Benefits,
		Skills:          rec.Skills,
		Location:        rec.Location,
		LocationType:    locationType,
		EmploymentType:  employmentType,
		ExperienceLevel: experienceLevel,
		SalaryMin:       rec.SalaryMin,
		SalaryMax:       rec.SalaryMax,
		SalaryCurrency:  rec.SalaryCurrency,
		ApplyURL:        rec.ApplyURL,
		IsActive:        true,
		ContentHash:     hash,
		Source:          rec.Source,
		SourceURL:       rec.SourceURL,
		PostedAt:        time.Now().UTC(),
	}, warnings
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Title":
			return "missing required field: title"
		case "CompanyName":
			return "missing required field: companyName"
		}
		return fmt.Sprintf("invalid field: %s", verrs[0].Field())
	}
	return err.Error()
}
