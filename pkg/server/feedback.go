package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"atlas/pkg/store"
	"atlas/pkg/utils"
)

type feedbackReq struct {
	LogID        string `json:"log_id"`
	UserRating   int    `json:"user_rating"`
	UserFeedback string `json:"user_feedback"`
}

// POST /api/feedback
func (s *Server) handlePostFeedback(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if req.LogID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "log_id is required")
	}
	if req.UserRating < 1 || req.UserRating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_rating must be between 1 and 5")
	}
	if s.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON("feedback store not configured"))
	}

	entry, err := s.Store.AttachFeedback(c.Request().Context(), req.LogID, req.UserRating, req.UserFeedback)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "log not found")
	}
	if err != nil {
		c.Logger().Errorf("failed to attach feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("failed to save feedback"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
		"log_id": entry.ID,
	})
}
