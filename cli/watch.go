package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/store"
	"github.com/robinvdvleuten/capita/watch"
)

type WatchCmd struct {
	Clear bool `help:"Clear the screen before every refresh." default:"true" negatable:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := globals.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfg.General.Backend == store.BackendMemory {
		return errors.New("the memory backend has no file to watch")
	}

	refresh := func(context.Context) error {
		if err := s.reload(); err != nil {
			return err
		}
		if cmd.Clear {
			_, _ = fmt.Fprint(ctx.Stdout, "\033[H\033[2J")
		}
		s.writeSummary(ctx.Stdout)
		_, _ = fmt.Fprintln(ctx.Stdout)
		printInfof(ctx.Stdout, "Watching %s (Ctrl+C to stop)", pathStyle.Render(s.storePath()))
		return nil
	}

	w, err := watch.New(s.storePath(), refresh)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := refresh(runCtx); err != nil {
		return err
	}

	return w.Run(runCtx)
}
