package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/config"
	"github.com/robinvdvleuten/capita/store"
)

// ConfigCmd groups the configuration commands.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Print the effective configuration."`
	Init ConfigInitCmd `cmd:"" help:"Write a config file with the default settings."`
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig(ctx)
	if err != nil {
		return err
	}

	path := configPath(globals)
	if config.Exists(path) {
		printInfof(ctx.Stdout, "Config file: %s", pathStyle.Render(path))
	} else {
		printInfof(ctx.Stdout, "Config file: %s (not created, using defaults)", pathStyle.Render(path))
	}
	if data := store.Path(cfg.General.Backend, cfg.DataDir()); data != "" {
		printInfof(ctx.Stdout, "Data file: %s", pathStyle.Render(data))
	}
	_, _ = fmt.Fprintln(ctx.Stdout)

	return toml.NewEncoder(ctx.Stdout).Encode(cfg)
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file without asking." short:"f"`
}

func (cmd *ConfigInitCmd) Run(ctx *kong.Context, globals *Globals) error {
	path := configPath(globals)

	if config.Exists(path) && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("Config file %q exists. Overwrite it?", path))
		if err != nil {
			return err
		}
		if !confirmed {
			printError(ctx.Stderr, fmt.Sprintf("Config file already exists: %s", path))
			return NewCommandError(1)
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s", pathStyle.Render(path)))
	return nil
}

func configPath(globals *Globals) string {
	if globals.ConfigFile != "" {
		return globals.ConfigFile
	}
	return config.Path()
}
