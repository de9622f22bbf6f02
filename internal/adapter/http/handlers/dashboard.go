package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetCalendar(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	window, err := validation.BuildCalendarWindow(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendarWindow, lang),
		)
		return
	}

	data, err := h.dashboardService.Calendar(c.Request.Context(), userID, window)
	if err != nil {
		zap.L().Error("failed to fetch calendar", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCalendar, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarResponse(data))
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	stats, err := h.dashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to fetch stats", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatsResponse(stats))
}
