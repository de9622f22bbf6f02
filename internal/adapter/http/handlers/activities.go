package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

const activityDeletedMessage = "Activity deleted successfully"

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, lang, err, apierrors.MsgInvalidActivityPayload)
		return
	}

	input, err := validation.BuildCreateActivityInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create activity", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) ListUserActivities(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := c.Param("id")

	activities, err := h.activityService.ListUserActivities(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list activities", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivities, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

func (h *ActivityHandler) GetActivity(c *gin.Context) {
	lang := middleware.GetLang(c)
	activityID := c.Param("id")

	activity, err := h.activityService.GetActivity(c.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get activity", zap.String("activity_id", activityID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	lang := middleware.GetLang(c)
	activityID := c.Param("id")

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, lang, err, apierrors.MsgInvalidActivityPayload)
		return
	}

	input, err := validation.BuildUpdateActivityInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), activityID, input)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update activity", zap.String("activity_id", activityID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	lang := middleware.GetLang(c)
	activityID := c.Param("id")

	if err := h.activityService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete activity", zap.String("activity_id", activityID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: activityDeletedMessage})
}
