package handler

import (
	"errors"
	"lottery-engine/internal/auth"
	"lottery-engine/internal/events"
	"lottery-engine/internal/model"
	"lottery-engine/internal/service"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	accounts service.AccountService
	bets     service.BetService
	draws    service.DrawService
	autoBets service.AutoBetService
	settings service.SettingsService
	issuer   *auth.Issuer
	hub      *events.Hub
	logger   zerolog.Logger
}

// NewHandler wires the HTTP API. hub may be nil, which disables /ws.
func NewHandler(services *service.Services, issuer *auth.Issuer, hub *events.Hub, logger zerolog.Logger) *Handler {
	registerValidators()
	return &Handler{
		accounts: services.Accounts,
		bets:     services.Bets,
		draws:    services.Draws,
		autoBets: services.AutoBets,
		settings: services.Settings,
		issuer:   issuer,
		hub:      hub,
		logger:   logger,
	}
}

var validatorsOnce sync.Once

func registerValidators() {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("drawkind", func(fl validator.FieldLevel) bool {
				return model.DrawKind(fl.Field().String()).Valid()
			})
		}
	})
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.POST("/accounts", h.OpenAccount)
	v1.POST("/sessions", h.CreateSession)

	draws := v1.Group("/draws")
	draws.GET("/recent", h.GetRecentDraws)
	draws.GET("/recommended", h.GetRecommendedDigits)
	draws.GET("/:kind/next", h.GetNextDraw)

	authed := v1.Group("", AuthMiddleware(h.issuer))
	authed.POST("/draws/:kind/simulate", h.SimulateDraw)
	authed.GET("/ws", h.StreamEvents)

	authed.GET("/me", h.GetMe)
	authed.GET("/me/balance", h.GetBalance)

	wallet := authed.Group("/wallet")
	wallet.POST("/deposit", h.Deposit)
	wallet.POST("/withdraw", h.Withdraw)

	authed.GET("/transactions", h.GetTransactions)
	authed.GET("/transactions/stats", h.GetTransactionStats)

	authed.POST("/vip/check", h.CheckVip)
	authed.GET("/vip/benefits", h.GetVipBenefits)
	authed.POST("/bonus/daily", h.ClaimDailyBonus)
	authed.POST("/bonus/referral", h.ApplyReferral)

	bets := authed.Group("/bets")
	bets.POST("", h.PlaceBet)
	bets.GET("", h.GetBets)
	bets.GET("/active", h.GetActiveBets)
	bets.GET("/stats", h.GetBetStats)
	bets.GET("/suggestion", h.GetBetSuggestion)

	autoBet := authed.Group("/autobet")
	autoBet.GET("", h.GetAutoBet)
	autoBet.POST("", h.StartAutoBet)
	autoBet.DELETE("", h.StopAutoBet)

	authed.GET("/settings", h.GetSettings)
	authed.PUT("/settings", h.UpdateSettings)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidDrawKind):
		status = http.StatusBadRequest
		code = "INVALID_DRAW_KIND"
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_ERROR"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrNotAuthenticated):
		status = http.StatusUnauthorized
		code = "NOT_AUTHENTICATED"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrBetNotFound):
		status = http.StatusNotFound
		code = "BET_NOT_FOUND"
	case errors.Is(err, model.ErrBetAlreadyResolved):
		status = http.StatusConflict
		code = "BET_ALREADY_RESOLVED"
	case errors.Is(err, model.ErrAutoPlayDisabled):
		status = http.StatusConflict
		code = "AUTOPLAY_DISABLED"
		resp.Details = "Enable auto_play in settings first"
	case errors.Is(err, model.ErrNoPendingBets):
		status = http.StatusConflict
		code = "NO_PENDING_BETS"
	case errors.Is(err, model.ErrPersistence):
		status = http.StatusServiceUnavailable
		code = "PERSISTENCE_ERROR"
	}
	resp.Code = code

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("account_id", c.GetString(accountIDKey)).Msg("internal server error")
	}

	c.JSON(status, resp)
}

func (h *Handler) badRequest(c *gin.Context, msg string, err error) {
	resp := model.ErrorResponse{Error: msg, Code: "INVALID_REQUEST"}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
