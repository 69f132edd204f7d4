package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "taskflow/internal/adapter/auth"
	dbadapter "taskflow/internal/adapter/db"
	httpadapter "taskflow/internal/adapter/http"
	"taskflow/internal/adapter/http/handlers"
	httpmiddleware "taskflow/internal/adapter/http/middleware"
	paymentadapter "taskflow/internal/adapter/payment"
	appservice "taskflow/internal/app/service"
	"taskflow/internal/config"
	"taskflow/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	authClient := authadapter.NewClient(cfg.AuthBaseURL)
	paymentClient := paymentadapter.NewClient(cfg.PaymentBaseURL, cfg.PaymentAPIKey)

	taskRepository := dbadapter.NewTaskRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	subscriptionRepository := dbadapter.NewSubscriptionRepository(db)

	taskService := appservice.NewTaskService(taskRepository)
	categoryService := appservice.NewCategoryService(categoryRepository)
	accountService := appservice.NewAccountService(authClient, userRepository, subscriptionRepository)
	billingService := appservice.NewBillingService(
		paymentClient,
		subscriptionRepository,
		cfg.ActivationPollAttempts,
		cfg.ActivationPollInterval,
	)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Task:     handlers.NewTaskHandler(taskService),
		Category: handlers.NewCategoryHandler(categoryService),
		Account:  handlers.NewAccountHandler(accountService, cfg.SiteURL),
		Billing:  handlers.NewBillingHandler(billingService),
	}, cfg.AuthJWTSecret)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
