package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/usecase/ingest"
	"github.com/joblens/joblens-backend/internal/usecase/sweep"
)

type ImportHandler struct {
	ingestUseCase *ingest.IngestUseCase
	sweepUseCase  *sweep.SweepUseCase
}

func NewImportHandler(ingestUseCase *ingest.IngestUseCase, sweepUseCase *sweep.SweepUseCase) *ImportHandler {
	return &ImportHandler{
		ingestUseCase: ingestUseCase,
		sweepUseCase:  sweepUseCase,
	}
}

// ImportJobs handles POST /admin/jobs/import
// @Summary Bulk import job postings
// @Description Imports a batch of externally sourced job records with content-hash dedup
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body []ingest.ImportRecord true "Import records"
// @Success 200 {object} ingest.ImportReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/jobs/import [post]
func (h *ImportHandler) ImportJobs(c *gin.Context) {
	var records []ingest.ImportRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "request body must be a JSON array of import records",
		})
		return
	}

	report, err := h.ingestUseCase.ImportBatch(c.Request.Context(), records)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "import batch is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to import jobs",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExpireJobs handles POST /admin/jobs/expire
// @Summary Deactivate expired jobs
// @Description Flips is_active off for every job past its expires_at
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/jobs/expire [post]
func (h *ImportHandler) ExpireJobs(c *gin.Context) {
	count, err := h.sweepUseCase.DeactivateExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to deactivate expired jobs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deactivated": count})
}
