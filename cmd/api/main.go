package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/database"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/handlers"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/logger"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/middleware"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/nutrition"
	"github.com/shubham26-source/Nutri-Tracker-App/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// best-effort: if no .env exists, continue with the real environment
	_ = godotenv.Load()

	lg, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	if err := utils.EnsureJWTReady(); err != nil {
		lg.Fatal("jwt secret not usable", zap.Error(err))
	}

	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Schema must exist before the first request is accepted.
	if err := db.CreateTables(context.Background()); err != nil {
		lg.Fatal("failed to create tables", zap.Error(err))
	}

	resolver := nutrition.DefaultChain(lg)
	authHandler := handlers.NewAuthHandler(db, lg)
	foodHandler := handlers.NewFoodHandler(db, resolver, lg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(lg))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	registerRoutes := func(r gin.IRouter) {
		auth := r.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		food := r.Group("/food")
		{
			food.GET("/search", foodHandler.Search)

			protected := food.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("/log", foodHandler.LogFood)
				protected.GET("/logs", foodHandler.GetLogs)
			}
		}

		r.GET("/health", handlers.HealthCheck)
		r.GET("/status", handlers.Status)
	}

	// The browser client calls everything under /api; the bare paths are kept
	// for direct use.
	registerRoutes(router)
	registerRoutes(router.Group("/api"))

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("nutri tracker API starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Warn("http server shutdown failed", zap.Error(err))
	}
}
