// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.SessionStoreConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and session settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
