package handler

import (
	"lottery-engine/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAutoBet
// @Summary Auto-bet status
// @Tags autobet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AutoBetConfig
// @Router /autobet [get]
func (h *Handler) GetAutoBet(c *gin.Context) {
	accountID := c.GetString(accountIDKey)
	cfg, err := h.autoBets.GetAutoBet(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if cfg == nil {
		cfg = &model.AutoBetConfig{AccountID: accountID}
	}
	c.JSON(http.StatusOK, cfg)
}

// StartAutoBet
// @Summary Start auto-bet
// @Description Requires auto_play in settings. Omitted fields use Mini, stake 25, multiplier 1, a random digit and 10 bets.
// @Tags autobet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param autobet body model.AutoBetRequest false "Auto-bet options"
// @Success 201 {object} model.AutoBetConfig
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 409 {object} model.ErrorResponse "Auto play disabled"
// @Router /autobet [post]
func (h *Handler) StartAutoBet(c *gin.Context) {
	var req model.AutoBetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badRequest(c, "Invalid request body", err)
			return
		}
	}

	cfg, err := h.autoBets.StartAutoBet(c.Request.Context(), c.GetString(accountIDKey), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// StopAutoBet
// @Summary Stop auto-bet
// @Tags autobet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AutoBetConfig
// @Failure 400 {object} model.ErrorResponse "No auto-bet configured"
// @Router /autobet [delete]
func (h *Handler) StopAutoBet(c *gin.Context) {
	cfg, err := h.autoBets.StopAutoBet(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
