package handler

import (
	"lottery-engine/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRecentDraws
// @Summary Recent draw results
// @Tags draws
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Success 200 {array} model.DrawResult
// @Router /draws/recent [get]
func (h *Handler) GetRecentDraws(c *gin.Context) {
	limit, err := queryInt(c, "limit", 10)
	if err != nil || limit <= 0 {
		h.badRequest(c, "limit must be a positive integer", err)
		return
	}

	results, err := h.draws.GetRecentDrawResults(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetRecommendedDigits
// @Summary Recommended digits
// @Description Least drawn digits among recent results
// @Tags draws
// @Produce json
// @Success 200 {object} map[string][]int
// @Router /draws/recommended [get]
func (h *Handler) GetRecommendedDigits(c *gin.Context) {
	digits, err := h.bets.GetRecommendedDigits(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"digits": digits})
}

// GetNextDraw
// @Summary Next draw time
// @Tags draws
// @Produce json
// @Param kind path string true "Draw kind" Enums(main, weekend, mini)
// @Success 200 {object} model.NextDrawResponse
// @Failure 400 {object} model.ErrorResponse "Unknown draw kind"
// @Router /draws/{kind}/next [get]
func (h *Handler) GetNextDraw(c *gin.Context) {
	kind, err := model.ParseDrawKind(c.Param("kind"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	next, err := h.draws.NextDrawTime(kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	info, _ := kind.Info()
	c.JSON(http.StatusOK, model.NextDrawResponse{DrawKind: kind, Info: info, NextDraw: next})
}

// SimulateDraw
// @Summary Run a draw now
// @Description Draws one digit and resolves every pending bet of the kind
// @Tags draws
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Draw kind" Enums(main, weekend, mini)
// @Success 200 {object} model.DrawResult
// @Failure 409 {object} model.ErrorResponse "No pending bets"
// @Router /draws/{kind}/simulate [post]
func (h *Handler) SimulateDraw(c *gin.Context) {
	kind, err := model.ParseDrawKind(c.Param("kind"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.draws.SimulateDraw(c.Request.Context(), kind)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StreamEvents
// @Summary Live event stream
// @Description WebSocket stream of the caller's events and global draw results
// @Tags draws
// @Security BearerAuth
// @Param token query string false "Session token when headers cannot be set"
// @Router /ws [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "event stream disabled", Code: "NOT_FOUND"})
		return
	}
	h.hub.Subscribe(c.Writer, c.Request, c.GetString(accountIDKey))
}
