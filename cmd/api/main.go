package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pocketly/wallet-service/internal/config"
	"github.com/pocketly/wallet-service/internal/handler"
	"github.com/pocketly/wallet-service/internal/integrations/quotes"
	"github.com/pocketly/wallet-service/internal/middleware"
	"github.com/pocketly/wallet-service/internal/repository"
	"github.com/pocketly/wallet-service/internal/service"
	"github.com/pocketly/wallet-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	quotesClient := quotes.NewClient(cfg, logger)
	mailSender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, quotesClient, mailSender)
	h := handler.NewHandler(svc, logger)

	// Schedule investment revaluation from the quote feed
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.QuotesSchedule, func() {
		svc.RefreshInvestmentValues(context.Background())
	}); err != nil {
		logger.Fatalf("Failed to schedule quote refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/wallets", h.CreateWallet).Methods("POST")
	authRouter.HandleFunc("/wallets", h.ListWallets).Methods("GET")
	authRouter.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	authRouter.HandleFunc("/goals", h.ListGoals).Methods("GET")
	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/investments", h.CreateInvestment).Methods("POST")
	authRouter.HandleFunc("/investments", h.ListInvestments).Methods("GET")
	authRouter.HandleFunc("/transfers", h.CreateTransfer).Methods("POST")
	authRouter.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	authRouter.HandleFunc("/profile", h.Profile).Methods("GET")
	authRouter.HandleFunc("/profile", h.UpdateProfile).Methods("PATCH")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
