// @title Reminder Service API
// @version 1.0
// @description CRUD API for per-user reminders

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"

	_ "github.com/hideapp/reminder-service/docs" // swagger artifacts
	"github.com/hideapp/reminder-service/internal/config"
	"github.com/hideapp/reminder-service/internal/database"
	"github.com/hideapp/reminder-service/internal/handlers"
	"github.com/hideapp/reminder-service/internal/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		slog.Error("could not connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	mux := routes.NewRouter(
		handlers.NewReminderHandler(db),
		handlers.NewHealthHandler(db),
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := sloghttp.New(logger)(c.Handler(mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.Any("error", err))
	}
	slog.Info("server stopped")
}
