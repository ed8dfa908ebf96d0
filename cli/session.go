package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/capita/config"
	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/output"
	"github.com/robinvdvleuten/capita/report"
	"github.com/robinvdvleuten/capita/store"
	"github.com/robinvdvleuten/capita/telemetry"
)

// session is the state shared by one command invocation: the effective
// configuration, the opened store and the ledger loaded from it.
type session struct {
	kctx   *kong.Context
	ctx    context.Context
	cfg    config.Config
	styles *output.Styles

	store  store.Store
	repo   *store.Repository
	ledger *ledger.Ledger

	collector telemetry.Collector
	root      telemetry.Timer
}

// loadConfig resolves the configuration: flags beat the environment, which
// beats the config file. It also installs the default logger.
func (g *Globals) loadConfig(kctx *kong.Context) (config.Config, error) {
	cfg, err := config.Load(g.ConfigFile)
	if err != nil {
		return cfg, err
	}

	cfg.ApplyEnv(os.Getenv)

	if g.DataDir != "" {
		cfg.General.DataDir = g.DataDir
	}
	if g.Backend != "" {
		cfg.General.Backend = g.Backend
	}
	if g.LogLevel != "" {
		cfg.General.LogLevel = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(kctx.Stderr, &slog.HandlerOptions{Level: level})))

	return cfg, nil
}

// open loads the configuration, opens the store and reads the ledger.
// Callers must Close the returned session.
func (g *Globals) open(kctx *kong.Context) (*session, error) {
	cfg, err := g.loadConfig(kctx)
	if err != nil {
		return nil, err
	}

	s := &session{
		kctx:   kctx,
		ctx:    context.Background(),
		cfg:    cfg,
		styles: output.NewStyles(kctx.Stdout),
	}

	if g.Telemetry {
		s.collector = telemetry.NewTimingCollector()
		s.ctx = telemetry.WithCollector(s.ctx, s.collector)

		s.root = s.collector.Start(strings.TrimSpace("capita " + kctx.Command()))
		s.ctx = telemetry.WithRootTimer(s.ctx, s.root)
	}

	st, err := store.Open(cfg.General.Backend, s.storePath())
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = st

	budget, _ := cfg.Budget()
	s.repo = store.NewRepository(st, store.WithDefaultBudget(budget))

	if err := s.reload(); err != nil {
		s.Close()
		return nil, err
	}

	slog.Debug("session opened", "component", "cli", "backend", cfg.General.Backend, "path", s.storePath())
	return s, nil
}

func (s *session) storePath() string {
	return store.Path(s.cfg.General.Backend, s.cfg.DataDir())
}

// reload replaces the ledger with the stored snapshot.
func (s *session) reload() error {
	snapshot, err := s.repo.Load(s.ctx)
	if err != nil {
		return err
	}
	s.ledger = ledger.FromSnapshot(snapshot, ledger.WithDateLayout(s.cfg.Display.DateFormat))
	return nil
}

// save persists the ledger after a successful mutation.
func (s *session) save() error {
	return s.repo.Save(s.ctx, s.ledger.Snapshot())
}

// Close releases the store and prints telemetry when enabled.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			slog.Warn("failed to close store", "component", "cli", "error", err)
		}
		s.store = nil
	}

	if s.collector != nil {
		s.root.End()
		_, _ = fmt.Fprintln(s.kctx.Stderr)
		s.collector.Report(s.kctx.Stderr, output.NewStyles(s.kctx.Stderr))
		s.collector = nil
	}
}

// money formats an amount for the terminal.
func (s *session) money(d decimal.Decimal) string {
	return s.cfg.Display.CurrencySymbol + d.String()
}

// fail prints user-facing errors once and turns them into an exit code.
// Anything else is returned unchanged for kong to report.
func (s *session) fail(err error) error {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		printError(s.kctx.Stderr, verr.Message)
		return NewCommandError(1)
	case errors.Is(err, report.ErrNoExpenses):
		printError(s.kctx.Stderr, err.Error())
		return NewCommandError(1)
	default:
		return err
	}
}
