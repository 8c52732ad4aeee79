// File: washly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washly/config"
	"washly/database"
	washerRepo "washly/database/repository/washer"
	"washly/handlers"
	"washly/middleware"
	"washly/routes"
	"washly/services/geocode"
	"washly/services/location"
	"washly/services/matching"
	"washly/services/session"
	"washly/services/wallet"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repository layer, seeded with the washer catalogue on first run.
	washers := washerRepo.NewMongoWasherRepo()
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := washers.Seed(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed washer catalogue: %v", err)
	}
	cancelSeed()

	sessionStore := session.NewStore(logger)

	locationService := location.NewLocationService(utils.GetPrefsCacheClient(), logger)

	geocodeService, err := geocode.NewMapsGeocodeService(config.AppConfig.GoogleAPIKey, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize geocode service: %v", err)
	}

	matchingService := matching.NewMatchingService(washers, sessionStore, utils.GetFlowCacheClient(), logger)

	walletService := wallet.NewWalletService(sessionStore, utils.GetPrefsCacheClient(), logger)

	handlerBundle := &handlers.HandlerBundle{
		Session:  handlers.NewSessionHandler(sessionStore, locationService),
		Matching: handlers.NewMatchingHandler(matchingService),
		Wallet:   handlers.NewWalletHandler(walletService),
		Activity: handlers.NewActivityHandler(sessionStore),
		Location: handlers.NewLocationHandler(geocodeService, locationService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetPrefsCacheClient(), utils.GetFlowCacheClient()},
		database.MongoClient,
	)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("main: listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
