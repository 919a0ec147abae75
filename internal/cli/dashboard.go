package cli

import (
	"context"
	stderrors "errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/pcmon/internal/config"
	"github.com/rileyhilliard/pcmon/internal/conn"
	"github.com/rileyhilliard/pcmon/internal/errors"
	"github.com/rileyhilliard/pcmon/internal/logger"
	"github.com/rileyhilliard/pcmon/internal/monitor"
)

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(ctx context.Context, flags DashboardFlags) error {
	o := globalOverrides()
	o.ReconnectDelay = flags.ReconnectDelay
	o.LogFile = flags.LogFile

	cfg, path, err := resolveConfig(configFlag, o)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrConfig,
			"The dashboard needs an interactive terminal",
			"Run pcmon from a terminal, or use 'pcmon check' to probe the stream.")
	}

	// The dashboard owns the terminal, so log lines go to a file.
	logFile, err := tea.LogToFile(cfg.Log.File, "pcmon")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+cfg.Log.File,
			"Pick a writable path with --log-file or log.file in your config.")
	}
	defer logFile.Close()
	logger.SetVerbose(cfg.Log.Verbose)

	log := logger.NewEnvLogger("[cli]")
	if path == "" {
		log.Info("no config file found, using defaults")
	} else {
		log.Info("loaded config from %s", path)
	}

	s, err := newSession(cfg, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil {
		return err
	}
	_, err = s.Run(ctx)
	return err
}

// session ties one connection manager to one program. The manager feeds the
// program through a monitor.Bridge, so frames and status changes reach the
// model in the order the manager produced them.
type session struct {
	program *tea.Program
	manager *conn.Manager
	log     logger.Logger
}

// newSession builds the model and manager for cfg. Nothing is started.
func newSession(cfg *config.Config, opts ...tea.ProgramOption) (*session, error) {
	log := logger.NewEnvLogger("[cli]")
	model := monitor.NewModel(monitor.Options{
		Origin:    cfg.Origin,
		Dashboard: cfg.DashboardOptions(),
	})
	program := tea.NewProgram(model, opts...)

	manager, err := conn.NewManager(conn.Options{
		Origin:         cfg.Origin,
		ReconnectDelay: cfg.ReconnectDelay,
		Dialer:         conn.WebsocketDialer{HandshakeTimeout: cfg.HandshakeTimeout},
	}, monitor.NewBridge(program))
	if err != nil {
		return nil, err
	}

	return &session{program: program, manager: manager, log: log}, nil
}

// Run connects and blocks until the program exits or ctx is cancelled. The
// manager is stopped before Run returns, which cancels any pending reconnect.
func (s *session) Run(ctx context.Context) (tea.Model, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := s.manager.Run(ctx); err != nil {
			s.log.Error("connection manager: %v", err)
		}
	}()
	s.log.Info("session %s streaming from %s", s.manager.Session(), s.manager.Endpoint())
	s.manager.Start()

	final, err := s.program.Run()

	s.manager.Stop()
	<-s.manager.Done()

	if err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return final, nil
		}
		return final, errors.Wrap(err, "The dashboard stopped unexpectedly")
	}
	return final, nil
}

// Quit asks the program to exit.
func (s *session) Quit() {
	s.program.Quit()
}
