package handler

import (
	"lottery-engine/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings
// @Summary Account settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Settings
// @Router /settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings
// @Summary Update settings
// @Description Merges the given fields over the stored settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body model.SettingsPatch true "Fields to change"
// @Success 200 {object} model.Settings
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var patch model.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	settings, err := h.settings.UpdateSettings(c.Request.Context(), c.GetString(accountIDKey), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
