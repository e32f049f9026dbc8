package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarat-asymmetrica/dockvedic/internal/appconfig"
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
)

// rootOptions holds the global flags every subcommand reads through
// persistentPreRun.
type rootOptions struct {
	configPath string
	logLevel   string
	cfg        *appconfig.Config
	logger     logging.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "dockvedic",
		Short:   "dockvedic — composite-scored rigid-body/torsional docking search",
		Version: fmt.Sprintf("%s (%s)", version, gitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (optional; defaults + env vars used otherwise)")
	pf.StringVar(&opts.logLevel, "log-level", "", "override log.level from config (debug|info|warn|error)")

	cmd.AddCommand(
		newValidateCmd(opts),
		newScoreCmd(opts),
		newRunCmd(opts),
	)

	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := appconfig.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	o.cfg = cfg
	o.logger = logger
	return nil
}
