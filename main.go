package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servana/config"
	"servana/database"
	bookingRepoPkg "servana/database/repository/booking"
	profileRepoPkg "servana/database/repository/profile"
	reviewRepoPkg "servana/database/repository/review"
	taskRepoPkg "servana/database/repository/task"
	"servana/handlers"
	"servana/middleware"
	"servana/routes"
	"servana/services/account"
	"servana/services/booking"
	"servana/services/catalog"
	"servana/services/intelligence"
	"servana/services/matching"
	"servana/services/payment"
	"servana/services/review"
	"servana/services/task"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	taskRepo := taskRepoPkg.NewMongoTaskRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	cat := catalog.Default()
	classifier := buildClassifier(cat, logger)

	accountService := &account.DefaultAccountService{
		Repo:   profileRepo,
		Logger: logger,
	}
	taskService := &task.DefaultTaskService{
		Repo:   taskRepo,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Tasks:    taskRepo,
		Profiles: profileRepo,
		Logger:   logger,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Profiles: profileRepo,
		Logger:   logger,
	}
	matchingService := &matching.DefaultMatchingService{
		Providers: profileRepo,
		Catalog:   cat,
		Logger:    logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Logger: logger,
	}

	// handlers.
	accountHandler := &handlers.AccountHandler{Service: accountService}
	taskHandler := &handlers.TaskHandler{Service: taskService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService, Bookings: bookingService}
	intelligenceHandler := &handlers.IntelligenceHandler{
		Classifier: classifier,
		Catalog:    cat,
		Matcher:    matchingService,
		Backend:    config.AppConfig.ClassifierBackend,
	}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService, Bookings: bookingService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Account endpoints.
		RegisterHandler:      accountHandler.RegisterHandler,
		SignInHandler:        accountHandler.SignInHandler,
		SignOutHandler:       accountHandler.SignOutHandler,
		GetProfileHandler:    accountHandler.GetProfileHandler,
		UpdateProfileHandler: accountHandler.UpdateProfileHandler,
		ListProfilesHandler:  accountHandler.ListProfilesHandler,
		ListProvidersHandler: accountHandler.ListProvidersHandler,

		// Task endpoints.
		CreateTaskHandler: taskHandler.CreateTaskHandler,
		ListTasksHandler:  taskHandler.ListTasksHandler,
		GetTaskHandler:    taskHandler.GetTaskHandler,
		UpdateTaskHandler: taskHandler.UpdateTaskHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:      bookingHandler.ListMyBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		BookingStatsHandler:        bookingHandler.BookingStatsHandler,

		// Review endpoints.
		CreateReviewHandler:        reviewHandler.CreateReviewHandler,
		ListProviderReviewsHandler: reviewHandler.ListProviderReviewsHandler,

		// Intelligence endpoints.
		ClassifyHandler:  intelligenceHandler.ClassifyHandler,
		FollowUpsHandler: intelligenceHandler.FollowUpsHandler,
		MatchHandler:     intelligenceHandler.MatchHandler,
		AIHealthHandler:  intelligenceHandler.AIHealthHandler,

		// Payment endpoints.
		CheckoutHandler:   paymentHandler.CheckoutHandler,
		PayPageHandler:    paymentHandler.PayPageHandler,
		PaySuccessHandler: paymentHandler.PaySuccessHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, profileRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildClassifier selects the classifier backend from configuration. Unknown
// values and missing credentials fall back to the keyword classifier.
func buildClassifier(cat *catalog.Catalog, logger *zap.Logger) catalog.Classifier {
	switch config.AppConfig.ClassifierBackend {
	case "ollama":
		model := intelligence.NewOllamaClient(
			config.AppConfig.OllamaURL,
			config.AppConfig.OllamaModel,
			time.Duration(config.AppConfig.OllamaTimeoutSecs)*time.Second,
		)
		return intelligence.NewLLMClassifier(model, cat, logger)
	case "gemini":
		if config.AppConfig.GeminiAPIKey == "" {
			logger.Warn("gemini backend selected but GEMINI_API_KEY is empty, using keyword classifier")
			return catalog.NewKeywordClassifier(cat)
		}
		model, err := intelligence.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("failed to initialize gemini client, using keyword classifier", zap.Error(err))
			return catalog.NewKeywordClassifier(cat)
		}
		return intelligence.NewLLMClassifier(model, cat, logger)
	default:
		return catalog.NewKeywordClassifier(cat)
	}
}
