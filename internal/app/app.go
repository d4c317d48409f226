// Package app provides the application context for lan-address-gen.
// It allows dependency injection for testing.
package app

import (
	"context"

	"github.com/firefly-engineering/lan-address-gen/internal/address"
	"github.com/firefly-engineering/lan-address-gen/internal/allocate"
	"github.com/firefly-engineering/lan-address-gen/internal/config"
	"github.com/firefly-engineering/lan-address-gen/internal/logging"
	"github.com/firefly-engineering/lan-address-gen/internal/probe"
	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config holds the effective settings
	Config *config.Config

	// Executor runs external commands for the exec prober
	Executor system.CommandExecutor

	// Prober overrides the prober built from Config
	Prober probe.Prober
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithProber sets a custom prober
func WithProber(p probe.Prober) Option {
	return func(a *App) {
		a.Prober = p
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		app.Config = config.Default()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}

	return app
}

// Generate maps input onto the configured address space.
func (a *App) Generate(input string) (address.Address, error) {
	return address.FromString(input, a.Config.Salt, a.Config.Pattern)
}

// FindAvailable walks forward from initial until the prober reports a free address.
// observer may be nil.
func (a *App) FindAvailable(ctx context.Context, initial address.Address, observer func(allocate.Attempt)) (*allocate.Result, error) {
	p, err := a.prober()
	if err != nil {
		return nil, err
	}

	opts := []allocate.Option{allocate.WithMaxAttempts(a.Config.Probe.MaxAttempts)}
	if observer != nil {
		opts = append(opts, allocate.WithObserver(observer))
	}

	return allocate.FindAvailable(ctx, initial, p, opts...)
}

func (a *App) prober() (probe.Prober, error) {
	if a.Prober != nil {
		return a.Prober, nil
	}

	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	method := a.Config.ProbeMethod()

	logging.Debug("using prober", "method", method, "timeout", a.Config.Probe.Timeout)
	return probe.New(method, a.Config.Probe.Timeout, a.Executor)
}
