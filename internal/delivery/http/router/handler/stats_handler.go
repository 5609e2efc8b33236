package handler

import (
	"context"
	"net/http"
	"time"

	"jobportal/internal/delivery/http/response"
	"jobportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// statsView is the public platform statistics payload.
type statsView struct {
	TotalUsers  int64 `json:"total_users"`
	Hirers      int64 `json:"hirers"`
	Applicants  int64 `json:"applicants"`
	Freelancers int64 `json:"freelancers"`
}

// StatsHandler serves the public, unauthenticated endpoints.
type StatsHandler struct {
	uc usecase.UserUsecase
	db *gorm.DB
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.UserUsecase, db *gorm.DB) *StatsHandler {
	return &StatsHandler{uc: uc, db: db}
}

// Root serves the API landing message.
func (h *StatsHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Job Portal API",
	})
}

// HealthCheck reports liveness, including database reachability.
func (h *StatsHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "degraded",
				"database": "unreachable",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// GetStats returns public per-role account totals.
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetPlatformStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsView{
		TotalUsers:  stats.TotalUsers,
		Hirers:      stats.Hirers,
		Applicants:  stats.Applicants,
		Freelancers: stats.Freelancers,
	}, "")
}
