package handler

import (
	"errors"
	"lottery-engine/internal/model"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// OpenAccount
// @Summary Open an account
// @Description Creates an account with an optional signup balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body model.OpenAccountRequest true "Account details"
// @Success 201 {object} model.Account
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /accounts [post]
func (h *Handler) OpenAccount(c *gin.Context) {
	var req model.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	account, err := h.accounts.OpenAccount(c.Request.Context(), req.Name, req.InitialBalance)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// CreateSession
// @Summary Start a session
// @Description Issues a bearer token for an existing account
// @Tags accounts
// @Accept json
// @Produce json
// @Param session body model.SessionRequest true "Session request"
// @Success 201 {object} model.SessionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 401 {object} model.ErrorResponse "Unknown account"
// @Router /sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	if _, err := h.accounts.GetAccount(c.Request.Context(), req.AccountID); err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			err = model.ErrNotAuthenticated
		}
		h.handleError(c, err)
		return
	}

	token, expiresAt, err := h.issuer.Issue(req.AccountID, req.RememberMe)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.SessionResponse{
		AccountID: req.AccountID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetMe
// @Summary Current account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Account
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// GetBalance
// @Summary Current balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	accountID := c.GetString(accountIDKey)
	balance, err := h.accounts.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BalanceResponse{AccountID: accountID, Balance: balance})
}

// parseTimeRange reads optional RFC 3339 from/to query parameters
func parseTimeRange(c *gin.Context) (from, to *time.Time, err error) {
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
