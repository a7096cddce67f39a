package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	app "github.com/JvSdv/whiteboardSoketServer/internal/app"
	httpx "github.com/JvSdv/whiteboardSoketServer/internal/http"
	ws "github.com/JvSdv/whiteboardSoketServer/internal/ws"
	"github.com/JvSdv/whiteboardSoketServer/pkg/auth"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg.Env)

	if cfg.Env == "prod" && cfg.JWTSecret == "dev-secret-change" {
		log.Fatal("JWT_SECRET must be set in prod")
	}

	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Room registry + relay; room access is open by default, plug a real
	// Authorizer here once boards grow ACLs.
	hub := ws.NewHub(logger, auth.New(cfg.JWTSecret), nil)

	// HTTP + WS router
	router := httpx.NewRouter(cfg, logger, hub)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("server.listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server.crash", "err", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("server.shutdown.start")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)

	logger.Info("server.shutdown.complete")
	_ = os.Stdout.Sync()
}
