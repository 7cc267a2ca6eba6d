package handler

import (
	"lottery-engine/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlaceBet
// @Summary Place a bet
// @Description Debits stake plus entry fee and records a pending bet. Mini bets resolve after 30 seconds.
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bet body model.BetRequest true "Bet details"
// @Success 201 {object} model.Bet
// @Failure 400 {object} model.ErrorResponse "Validation failed or insufficient funds"
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	var req model.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	bet, err := h.bets.PlaceBet(c.Request.Context(), c.GetString(accountIDKey), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bet)
}

// GetBets
// @Summary Bet history
// @Description Newest first with optional filters and pagination
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(pending, won, lost, cancelled)
// @Param draw_kind query string false "Draw kind" Enums(main, weekend, mini)
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.BetListResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /bets [get]
func (h *Handler) GetBets(c *gin.Context) {
	filter := model.BetFilter{Status: model.BetStatus(c.Query("status"))}
	if v := c.Query("draw_kind"); v != "" {
		kind, err := model.ParseDrawKind(v)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.DrawKind = kind
	}

	var err error
	if filter.From, filter.To, err = parseTimeRange(c); err != nil {
		h.badRequest(c, "from and to must be RFC 3339 timestamps", err)
		return
	}
	if filter.Limit, err = queryInt(c, "limit", 50); err != nil || filter.Limit <= 0 {
		h.badRequest(c, "limit must be a positive integer", err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil || filter.Offset < 0 {
		h.badRequest(c, "offset must not be negative", err)
		return
	}

	bets, total, err := h.bets.GetBetsForAccount(c.Request.Context(), c.GetString(accountIDKey), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BetListResponse{
		Bets:   bets,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetActiveBets
// @Summary Pending bets
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Bet
// @Router /bets/active [get]
func (h *Handler) GetActiveBets(c *gin.Context) {
	bets, err := h.bets.GetActiveBets(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

// GetBetStats
// @Summary Betting statistics
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BettingStats
// @Router /bets/stats [get]
func (h *Handler) GetBetStats(c *gin.Context) {
	stats, err := h.bets.GetBettingStats(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetBetSuggestion
// @Summary Suggested next bet
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BetSuggestion
// @Router /bets/suggestion [get]
func (h *Handler) GetBetSuggestion(c *gin.Context) {
	suggestion, err := h.bets.GetBetSuggestion(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
