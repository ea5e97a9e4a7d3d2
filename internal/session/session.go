package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/bootstrap"
	"github.com/yigit/coursecatalog/internal/config"
)

// Options selects the config file and the streams a session talks to.
type Options struct {
	ConfigPath string
	In         io.Reader
	Out        io.Writer
	LogOutput  io.Writer
}

// Session holds the state for one interactive catalog run.
type Session struct {
	config *config.Config
	menu   *controllers.MenuController
	logger zerolog.Logger
	id     string
}

// NewSession creates and initializes a new session by calling bootstrap functions.
func NewSession(opts Options) (*Session, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath, opts.LogOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, opts.In, opts.Out, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Session{
		config: cfg,
		menu:   deps.MenuController,
		logger: deps.Logger,
		id:     deps.SessionID,
	}, nil
}

// ID returns the session identifier attached to every log line.
func (s *Session) ID() string {
	return s.id
}

// Run drives the menu until the user exits, input ends or an OS signal arrives.
// A signal is a normal way to leave and is not reported as an error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info().Int("capacity", s.config.Catalog.Capacity).Msg("Starting catalog session...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	menuErrors := make(chan error, 1)
	go func() {
		menuErrors <- s.menu.Run(ctx)
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-menuErrors:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("menu stopped: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, ending session...")
	case <-ctx.Done():
		s.logger.Info().Msg("Session context cancelled")
	}

	s.logger.Info().Msg("Catalog session finished. All data is discarded.")
	return nil
}
