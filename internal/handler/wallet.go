package handler

import (
	"lottery-engine/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Deposit
// @Summary Deposit funds
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.AmountRequest true "Amount"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallet/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	trans, err := h.accounts.AddMoney(c.Request.Context(), c.GetString(accountIDKey), req.Amount, model.TagDeposit, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trans)
}

// Withdraw
// @Summary Withdraw funds
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.AmountRequest true "Amount"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Router /wallet/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	trans, err := h.accounts.DeductMoney(c.Request.Context(), c.GetString(accountIDKey), req.Amount, model.TagWithdrawal, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trans)
}

// GetTransactions
// @Summary Transaction log
// @Description Newest first, optionally filtered by kind and time range
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param kind query string false "credit or debit" Enums(credit, debit)
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	filter := model.TransactionFilter{Kind: model.TransactionKind(c.Query("kind"))}
	if filter.Kind != "" && filter.Kind != model.TransactionCredit && filter.Kind != model.TransactionDebit {
		h.badRequest(c, "kind must be credit or debit", nil)
		return
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

	transactions, err := h.accounts.GetTransactions(c.Request.Context(), c.GetString(accountIDKey), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        filter.Limit,
	})
}

// GetTransactionStats
// @Summary Balance statistics
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceStatistics
// @Router /transactions/stats [get]
func (h *Handler) GetTransactionStats(c *gin.Context) {
	stats, err := h.accounts.GetBalanceStatistics(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CheckVip
// @Summary Check VIP upgrade
// @Description Upgrades the VIP level when spend and account age allow it and credits the upgrade bonus
// @Tags perks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VipUpgrade
// @Router /vip/check [post]
func (h *Handler) CheckVip(c *gin.Context) {
	result, err := h.accounts.CheckVipUpgrade(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetVipBenefits
// @Summary VIP benefits of the current level
// @Tags perks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VipBenefits
// @Router /vip/benefits [get]
func (h *Handler) GetVipBenefits(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.accounts.GetVipBenefits(account.VipLevel))
}

// ClaimDailyBonus
// @Summary Claim the daily bonus
// @Tags perks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DailyBonus
// @Router /bonus/daily [post]
func (h *Handler) ClaimDailyBonus(c *gin.Context) {
	result, err := h.accounts.CheckDailyBonus(c.Request.Context(), c.GetString(accountIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApplyReferral
// @Summary Apply a referral code
// @Tags perks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param referral body model.ReferralRequest true "Referral code"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Invalid or already applied"
// @Router /bonus/referral [post]
func (h *Handler) ApplyReferral(c *gin.Context) {
	var req model.ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	trans, err := h.accounts.ApplyReferralBonus(c.Request.Context(), c.GetString(accountIDKey), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trans)
}
