package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"lottery-engine/internal/auth"
	"lottery-engine/internal/config"
	"lottery-engine/internal/database"
	"lottery-engine/internal/handler"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/repository/ledger"
	"lottery-engine/internal/repository/postgres"
	redisstore "lottery-engine/internal/repository/redis"
	"lottery-engine/internal/scheduler"
	"lottery-engine/internal/service"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool  *pgxpool.Pool
	testRedis *redis.Client
	testCfg   *config.Config
)

// Runs as first function. Each backend that answers is exercised.
func TestMain(m *testing.M) {
	if os.Getenv("RUN_E2E") == "" {
		fmt.Println("Skipping E2E tests, set RUN_E2E=1 to run them")
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	testCfg = cfg

	if err := database.Migrate(cfg.Database); err != nil {
		fmt.Printf("postgres unavailable, skipping: %v\n", err)
	} else if pool, err := database.NewPool(ctx, cfg.Database); err != nil {
		fmt.Printf("postgres unavailable, skipping: %v\n", err)
	} else {
		testPool = pool
	}

	if client, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		fmt.Printf("redis unavailable, skipping: %v\n", err)
	} else {
		testRedis = client
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	if testRedis != nil {
		_ = testRedis.Close()
	}
	os.Exit(code)
}

type e2eEnv struct {
	router *gin.Engine
	issuer *auth.Issuer
	sched  *scheduler.ManualScheduler
}

// forEachBackend runs fn against a clean store on every reachable backend
func forEachBackend(t *testing.T, fn func(t *testing.T, env *e2eEnv)) {
	backends := map[string]func(t *testing.T) repository.Store{
		config.StorePostgres: func(t *testing.T) repository.Store {
			if testPool == nil {
				t.Skip("Database connection not available")
			}
			_, err := testPool.Exec(context.Background(), "TRUNCATE ledger_entries")
			require.NoError(t, err)
			return postgres.NewStore(testPool)
		},
		config.StoreRedis: func(t *testing.T) repository.Store {
			if testRedis == nil {
				t.Skip("Redis connection not available")
			}
			// a fresh prefix isolates runs without flushing the database
			return redisstore.NewStore(testRedis, fmt.Sprintf("%se2e:%s:", testCfg.Redis.KeyPrefix, uuid.NewString()))
		},
	}

	for _, name := range []string{config.StorePostgres, config.StoreRedis} {
		open := backends[name]
		t.Run(name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			store := open(t)
			logger := zerolog.Nop()
			sched := scheduler.NewManualScheduler(time.Now())

			services := service.NewServices(service.Dependencies{
				Repos:     ledger.NewRepositories(store),
				Scheduler: sched,
				Clock:     sched,
				Game:      config.DefaultGame(),
				Logger:    logger,
			})
			issuer := auth.NewIssuer("e2e-secret", time.Hour, 24*time.Hour)
			h := handler.NewHandler(services, issuer, nil, logger)

			fn(t, &e2eEnv{router: h.SetupRoutes(), issuer: issuer, sched: sched})
		})
	}
}

func (e *e2eEnv) call(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if out != nil {
		_ = json.Unmarshal(w.Body.Bytes(), out)
	}
	return w.Code
}

// signUp opens an account over HTTP and returns its id and a session token
func (e *e2eEnv) signUp(t *testing.T, balance int64) (string, string) {
	t.Helper()
	var account model.Account
	code := e.call(t, http.MethodPost, "/api/v1/accounts", "", model.OpenAccountRequest{Name: "e2e", InitialBalance: balance}, &account)
	require.Equal(t, http.StatusCreated, code)

	var session model.SessionResponse
	code = e.call(t, http.MethodPost, "/api/v1/sessions", "", model.SessionRequest{AccountID: account.ID}, &session)
	require.Equal(t, http.StatusCreated, code)
	return account.ID, session.Token
}

func (e *e2eEnv) balance(t *testing.T, token string) int64 {
	t.Helper()
	var resp model.BalanceResponse
	require.Equal(t, http.StatusOK, e.call(t, http.MethodGet, "/api/v1/me/balance", token, nil, &resp))
	return resp.Balance
}

// Test_ConcurrentBets_BalanceStaysConsistent verifies:
// - 25 simultaneous bets against a balance that covers only 10
// - No bet is accepted once the balance is spent
// - Balance, bet history and transaction log agree afterwards
func Test_ConcurrentBets_BalanceStaysConsistent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, env *e2eEnv) {
		const (
			numRequests = 25
			betCost     = 100 // stake 50 plus the Main entry fee
			startFunds  = 1000
		)
		_, token := env.signUp(t, startFunds)

		// Channel to synchronize goroutine start
		barrier := make(chan struct{})
		results := make(chan int, numRequests)

		var wg sync.WaitGroup
		wg.Add(numRequests)
		for i := 0; i < numRequests; i++ {
			go func() {
				defer wg.Done()
				<-barrier
				var resp model.ErrorResponse
				code := env.call(t, http.MethodPost, "/api/v1/bets", token,
					model.BetRequest{DrawKind: model.DrawMain, SelectedDigit: 3, Stake: 50, Multiplier: 1}, &resp)
				if code == http.StatusBadRequest && resp.Code != "INSUFFICIENT_FUNDS" {
					code = -1
				}
				results <- code
			}()
		}

		// All goroutines start simultaneously
		close(barrier)
		wg.Wait()
		close(results)

		accepted := 0
		for code := range results {
			assert.Contains(t, []int{http.StatusCreated, http.StatusBadRequest, http.StatusServiceUnavailable}, code)
			if code == http.StatusCreated {
				accepted++
			}
		}
		assert.LessOrEqual(t, accepted, startFunds/betCost)
		assert.Equal(t, int64(startFunds-accepted*betCost), env.balance(t, token))

		var bets model.BetListResponse
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/bets?limit=100", token, nil, &bets))
		assert.Equal(t, accepted, bets.Total)

		var txs model.TransactionListResponse
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/transactions?kind=debit&limit=100", token, nil, &txs))
		assert.Equal(t, accepted, txs.Total)
		for _, tx := range txs.Transactions {
			assert.Equal(t, tx.BalanceBefore-tx.Amount, tx.BalanceAfter)
		}
	})
}

// Test_BetLifecycle verifies a deposit, a Main bet and its draw end to end
func Test_BetLifecycle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, env *e2eEnv) {
		_, token := env.signUp(t, 0)

		t.Run("Deposit increases balance", func(t *testing.T) {
			var tx model.Transaction
			code := env.call(t, http.MethodPost, "/api/v1/wallet/deposit", token, model.AmountRequest{Amount: 500}, &tx)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, int64(500), tx.BalanceAfter)
		})

		var bet model.Bet
		t.Run("Bet debits stake and fee", func(t *testing.T) {
			code := env.call(t, http.MethodPost, "/api/v1/bets", token,
				model.BetRequest{DrawKind: model.DrawMain, SelectedDigit: 5, Stake: 100, Multiplier: 2}, &bet)
			require.Equal(t, http.StatusCreated, code)
			assert.Equal(t, int64(150), bet.TotalCost)
			assert.Equal(t, int64(350), env.balance(t, token))
		})

		t.Run("Draw resolves the bet once", func(t *testing.T) {
			var result model.DrawResult
			code := env.call(t, http.MethodPost, "/api/v1/draws/main/simulate", token, nil, &result)
			require.Equal(t, http.StatusOK, code)
			assert.GreaterOrEqual(t, result.ResolvedBets, 1)

			var bets model.BetListResponse
			require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/bets", token, nil, &bets))
			require.Len(t, bets.Bets, 1)
			resolved := bets.Bets[0]
			assert.Equal(t, bet.ID, resolved.ID)

			if result.WinningDigit == 5 {
				assert.Equal(t, model.BetWon, resolved.Status)
				assert.Equal(t, int64(350)+bet.PotentialPayout, env.balance(t, token))
			} else {
				assert.Equal(t, model.BetLost, resolved.Status)
				assert.Equal(t, int64(350), env.balance(t, token))
			}

			code = env.call(t, http.MethodPost, "/api/v1/draws/main/simulate", token, nil, nil)
			assert.Equal(t, http.StatusConflict, code)
		})

		t.Run("Overdraft is rejected", func(t *testing.T) {
			var resp model.ErrorResponse
			code := env.call(t, http.MethodPost, "/api/v1/wallet/withdraw", token, model.AmountRequest{Amount: 1_000_000}, &resp)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
		})
	})
}

// Test_MiniBetResolvesOnSchedule verifies the Mini draw pays out after its delay
func Test_MiniBetResolvesOnSchedule(t *testing.T) {
	forEachBackend(t, func(t *testing.T, env *e2eEnv) {
		_, token := env.signUp(t, 1000)

		var bet model.Bet
		code := env.call(t, http.MethodPost, "/api/v1/bets", token,
			model.BetRequest{DrawKind: model.DrawMini, SelectedDigit: 7, Stake: 100, Multiplier: 1}, &bet)
		require.Equal(t, http.StatusCreated, code)

		var active []*model.Bet
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/bets/active", token, nil, &active))
		assert.Len(t, active, 1)

		require.Equal(t, 1, env.sched.Advance(context.Background(), 30*time.Second))
		assert.Empty(t, env.sched.Errors())

		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/bets/active", token, nil, &active))
		assert.Empty(t, active)

		var stats model.BettingStats
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/v1/bets/stats", token, nil, &stats))
		assert.Equal(t, 1, stats.TotalBets)
		assert.Equal(t, 1, stats.WonBets+stats.LostBets)
	})
}
