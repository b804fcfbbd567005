package cli

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/client"
	"github.com/idilsaglam/remotetodo/internal/config"
	"github.com/idilsaglam/remotetodo/internal/logging"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo manages todos on a remote todo service",
		Long: `todo is a terminal client for a remote todo service.

Run without a subcommand to open the interactive list.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), a.client, logging.Component("tui"))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	pf.StringVar(&a.apiURL, "api-url", "", "todo service collection URL (env "+config.EnvAPIURL+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	pf.StringVar(&a.logFile, "log-file", "", "log file (env "+config.EnvLogFile+")")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(
		a.lsCommand(),
		a.showCommand(),
		a.addCommand(),
		a.editCommand(),
		a.doneCommand(),
		a.rmCommand(),
		a.serveCommand(),
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger and
// client used by every command.
func (a *App) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return usageErrorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	ui.SetColorForcing(false, a.noColor)
	ui.SetTheme(cfg.Theme)

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.logger, a.closeLog = logger, closer
	log.Logger = logger

	opts := []client.Option{client.WithLogger(logging.Component("client"))}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	}
	a.client = client.New(cfg.APIURL, opts...)

	a.logger.Debug().Str("api_url", a.client.BaseURL()).Str("config", a.configPath).Msg("cli ready")
	return nil
}
