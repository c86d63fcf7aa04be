package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dobomatyas-blip/getluxsold-website/internal/analytics"
	"github.com/dobomatyas-blip/getluxsold-website/internal/attribution"
	"github.com/dobomatyas-blip/getluxsold-website/internal/email"
	"github.com/dobomatyas-blip/getluxsold-website/internal/embed"
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/internal/http/router"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry"
	"github.com/dobomatyas-blip/getluxsold-website/internal/referral"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Session-scoped attribution store (Redis when configured)
	store, closeStore := initAttributionStore(cfg, log)
	if closeStore != nil {
		defer closeStore()
	}

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	if !sender.Configured() {
		log.Warn("no email provider configured; inquiry submissions will be rejected")
	}

	emitter := analytics.NewEmitter(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Analytics module subscribes to domain events (not HTTP-facing)
	analyticsModule := analytics.NewModule(emitter, log)
	analyticsModule.RegisterHandlers(eventBus)

	attributionModule := attribution.NewModule(store, eventBus, val, log)
	referralModule := referral.NewModule(cfg, eventBus, val)
	inquiryModule := inquiry.NewModule(sender, cfg, eventBus, attributionModule.Service(), val, log)
	embedModule := embed.NewModule(cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			attributionModule,
			referralModule,
			inquiryModule,
			embedModule,
			analyticsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initAttributionStore connects to Redis when a URL is configured and falls
// back to the in-memory store otherwise. A Redis connection failure at boot
// also falls back: losing attribution continuity is preferable to refusing
// to serve the site.
func initAttributionStore(cfg config.SessionStoreConfig, log *logger.Logger) (attribution.Store, func()) {
	if cfg.GetRedisURL() == "" {
		log.Info("REDIS_URL not configured; using in-memory attribution store")
		return attribution.NewMemoryStore(cfg.GetAttributionTTL()), nil
	}

	redisStore, err := attribution.NewRedisStore(cfg.GetRedisURL(), cfg.GetAttributionTTL())
	if err != nil {
		log.Warn("redis unavailable; using in-memory attribution store", "error", err)
		return attribution.NewMemoryStore(cfg.GetAttributionTTL()), nil
	}

	log.Info("attribution store connected", "backend", "redis")
	return redisStore, func() {
		_ = redisStore.Close()
	}
}
