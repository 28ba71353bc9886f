package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/ru-lang-nlp/internal/config"
)

type app struct {
	configPath string
	logLevel   string
	workers    int

	cfg *config.Config
	log *zap.Logger

	// reference defaults to kljensenRussian.
	reference referenceStemmer
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rustem",
		Short:         "Snowball stemmer for Russian",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&a.workers, "workers", 0, "parallel stemming workers")

	root.AddCommand(
		a.stemCmd(),
		a.exportCmd(),
		a.lookupCmd(),
		a.checkCmd(),
		a.stopwordsCmd(),
	)
	return root
}

// setup loads the configuration, applies global flag overrides and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "flags")
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configured",
		zap.String("config", a.configPath),
		zap.Int("workers", cfg.Workers),
		zap.Bool("cache", cfg.Cache.Enabled))
	return nil
}
