package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/dogwalk/dogwalk-go/internal/config"
	"github.com/dogwalk/dogwalk-go/internal/crypto"
	"github.com/dogwalk/dogwalk-go/internal/handler"
	"github.com/dogwalk/dogwalk-go/internal/middleware"
	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/repository"
	"github.com/dogwalk/dogwalk-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	if cfg.SeedData {
		if err := repository.Seed(ctx, db); err != nil {
			slog.Warn("seeding failed", "error", err)
		}
	}

	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	dogRepo := repository.NewDogRepository(db)
	dogService := service.NewDogService(dogRepo)
	dogHandler := handler.NewDogHandler(dogService)

	walkRepo := repository.NewWalkRepository(db)
	walkService := service.NewWalkService(walkRepo)
	walkHandler := handler.NewWalkHandler(walkService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Get("/auth/me", authHandler.HandleMe)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Get("/dogs/{id}", dogHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleOwner))
			r.Get("/dogs", dogHandler.HandleList)
			r.Post("/dogs", dogHandler.HandleCreate)
			r.Put("/dogs/{id}", dogHandler.HandleUpdate)
			r.Delete("/dogs/{id}", dogHandler.HandleDelete)
		})
	})

	r.Get("/walks", walkHandler.HandleList)
	r.Get("/walks/{id}", walkHandler.HandleGet)
	r.Get("/walks/walker/{id}", walkHandler.HandleListByWalker)
	r.Get("/walks/owner/{id}", walkHandler.HandleListByOwner)
	r.Post("/walks", walkHandler.HandleSchedule)
	r.Put("/walks/{id}/complete", walkHandler.HandleComplete)
	r.Put("/walks/{id}/cancel", walkHandler.HandleCancel)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
