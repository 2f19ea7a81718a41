package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobhub/internal/app"
	"jobhub/internal/config"
	"jobhub/internal/database"
	"jobhub/internal/domain/notification"
	apphttp "jobhub/internal/http"
	"jobhub/internal/http/handlers"
	"jobhub/internal/http/metrics"
	httpmw "jobhub/internal/http/middleware"
	"jobhub/internal/http/response"
	"jobhub/internal/observability"
	"jobhub/internal/repository/postgres"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	notifier := notification.NewLogNotifier(logger)
	refService := app.NewReferenceService(accountRepo, companyRepo, jobRepo, applicationRepo)
	jobService := app.NewJobService(jobRepo, companyRepo, accountRepo, refService, notifier)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, accountRepo, refService, notifier)
	accountService := app.NewAccountService(accountRepo, companyRepo, jobRepo, notifier)
	companyService := app.NewCompanyService(companyRepo, notifier)
	workflowService := app.NewWorkflowService(jobRepo, applicationRepo, companyRepo, notifier)
	searchService := app.NewSearchService(jobRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	candidateService := app.NewCandidateService(accountRepo, applicationRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if redisClient := database.NewRedis(cfg.RedisAddr); redisClient != nil {
		limiter = httpmw.NewRedisLimiter(redisClient)
		logger.Info("redis rate limiter enabled")
	}

	jobHandler := handlers.NewJobHandler(jobService, workflowService, searchService, cfg.AdminKey)
	applicationHandler := handlers.NewApplicationHandler(applicationService, workflowService, limiter)
	accountHandler := handlers.NewAccountHandler(accountService)
	companyHandler := handlers.NewCompanyHandler(companyService, workflowService, cfg.AdminKey)
	candidateHandler := handlers.NewCandidateHandler(candidateService)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		AccountHandler:     accountHandler,
		CompanyHandler:     companyHandler,
		CandidateHandler:   candidateHandler,
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		Metrics:            collector,
		Limiter:            limiter,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
