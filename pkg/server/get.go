package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"atlas/pkg/recovery"
	"atlas/pkg/schema"
	"atlas/pkg/store"
	"atlas/pkg/utils"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Atlas Comparison API",
		"status":  "ok",
	})
}

type logResponse struct {
	*store.ResponseLog
	AtlasAnalysis schema.AtlasReply `json:"atlas_analysis"`
}

// GET /api/logs/:id
//
// Returns a stored comparison. The analysis response is stored as raw model
// output, so it is re-run through recovery on the way out.
func (s *Server) handleGetLog(c echo.Context) error {
	if s.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON("log store not configured"))
	}

	entry, err := s.Store.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "log not found")
	}
	if err != nil {
		c.Logger().Errorf("failed to fetch log: %v", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("failed to fetch log"))
	}

	return c.JSON(http.StatusOK, logResponse{
		ResponseLog:   entry,
		AtlasAnalysis: recovery.Recover(entry.AtlasResponse),
	})
}
