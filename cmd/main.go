package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	authapp "github.com/expenzo/expenzo-backend/application/auth"
	billgroupapp "github.com/expenzo/expenzo-backend/application/billgroup"
	budgetapp "github.com/expenzo/expenzo-backend/application/budget"
	jobapp "github.com/expenzo/expenzo-backend/application/job"
	marketplaceapp "github.com/expenzo/expenzo-backend/application/marketplace"
	"github.com/expenzo/expenzo-backend/cmd/config"
	redisclient "github.com/expenzo/expenzo-backend/cmd/redis"
	_ "github.com/expenzo/expenzo-backend/docs"
	billgroupRepo "github.com/expenzo/expenzo-backend/repository/billgroup"
	budgetRepo "github.com/expenzo/expenzo-backend/repository/budget"
	jobRepo "github.com/expenzo/expenzo-backend/repository/job"
	marketplaceRepo "github.com/expenzo/expenzo-backend/repository/marketplace"
	otpRepo "github.com/expenzo/expenzo-backend/repository/otp"
	redisRepo "github.com/expenzo/expenzo-backend/repository/redis"
	txRepo "github.com/expenzo/expenzo-backend/repository/tx"
	userRepo "github.com/expenzo/expenzo-backend/repository/user"
	"github.com/expenzo/expenzo-backend/thirdparty/mailer"
	"github.com/expenzo/expenzo-backend/transport"
	"github.com/expenzo/expenzo-backend/utils/logger"
)

// @title ExPeNzO API
// @version 1.0
// @description Student finance backend: OTP registration, marketplace, job board, bill splitting and budget tracking
// @host localhost:4000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Redis only backs rate-limit counters; without it the limiter keeps
	// in-process counters instead.
	if cfg.RedisEnabled() {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(db)
	MarketplaceRepo := marketplaceRepo.NewMarketplaceRepository(db)
	JobRepo := jobRepo.NewJobRepository(db)
	BillGroupRepo := billgroupRepo.NewBillGroupRepository(db)
	BudgetRepo := budgetRepo.NewBudgetRepository(db)
	RedisRepo := redisRepo.NewRepository()

	Mailer := mailer.New(cfg)
	if !Mailer.Configured() {
		logger.Warn("email transport not configured, dispatch will fail", zap.Bool("devOTPFallback", cfg.Email.DevOTPFallback))
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, TxRepo, UserRepo, OTPRepo, Mailer)
	MarketplaceApp := marketplaceapp.NewMarketplaceApp(MarketplaceRepo)
	JobApp := jobapp.NewJobApp(JobRepo)
	BillGroupApp := billgroupapp.NewBillGroupApp(BillGroupRepo)
	BudgetApp := budgetapp.NewBudgetApp(BudgetRepo)

	limiter := transport.NewRateLimiter(RedisRepo)
	httpTransport := transport.NewTransport(cfg, limiter, AuthApp, MarketplaceApp, JobApp, BillGroupApp, BudgetApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
