package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/usecase/match"
)

type FeedHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewFeedHandler(matchUseCase *match.MatchUseCase) *FeedHandler {
	return &FeedHandler{matchUseCase: matchUseCase}
}

// GetFeed handles GET /jobs/feed
// @Summary Get matched job feed
// @Description Ranked list of active jobs scored against the current user's profile
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} match.JobFeedItem
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	feed, err := h.matchUseCase.GetFeed(c.Request.Context(), userID.(int))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to build job feed",
		})
		return
	}

	c.JSON(http.StatusOK, feed)
}
