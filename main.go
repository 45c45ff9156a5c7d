package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/config"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/handlers"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/middleware"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/reconcile"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatalw("failed to connect to mongodb", "error", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client.Disconnect(disconnectCtx)
	}()
	logger.Infow("connected to mongodb", "database", cfg.MongoDB)

	db := client.Database(cfg.MongoDB)
	h := handlers.New(db, logger, cfg.UploadDir)
	secret := []byte(cfg.JWTSecret)
	auth := handlers.NewAuth(h, secret)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	middleware.Setup(r, logger)
	routes.Register(r, h, auth, secret)

	if cfg.ReconcileInterval > 0 {
		rec := reconcile.New(db, logger, cfg.ReconcileInterval)
		go rec.Run(ctx)
		logger.Infow("reconciler started", "interval", cfg.ReconcileInterval.String())
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnw("shutdown error", "error", err)
	}
}
