// Package cli implements the lvroute command tree.
package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/config"
)

// globalFlags are bound to the root command's persistent flags.
type globalFlags struct {
	configPath  string
	envFile     string
	logLevel    string
	logFormat   string
	verbose     bool
	frontier    string
	maxDistance int64
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	flags  globalFlags
	cfg    config.Config
	logger *log.Logger
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers so tests can capture it; cobra prints a returned error
// to the error writer as "Error: ...".
func NewRootCommand(version string) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "lvroute",
		Short:        "Shortest paths on small weighted undirected graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	defaults := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a YAML config file (env "+config.EnvPrefix+"CONFIG)")
	pf.StringVar(&a.flags.envFile, "env-file", "", "dotenv file with "+config.EnvPrefix+"* overrides")
	pf.StringVar(&a.flags.logLevel, "log-level", defaults.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", defaults.LogFormat, "log format (text, json, auto)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (forces debug level)")
	pf.StringVar(&a.flags.frontier, "frontier", defaults.Frontier, "dijkstra frontier (heap, list)")
	pf.Int64Var(&a.flags.maxDistance, "max-distance", defaults.MaxDistance, "stop the search past this distance (-1 = unlimited)")

	rootCmd.AddCommand(
		newDistancesCommand(a),
		newPathCommand(a),
		newVerifyCommand(a),
	)

	return rootCmd
}

// setup merges configuration sources and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	a.cfg = cfg

	a.logger, err = newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if a.flags.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.WithFields(log.Fields{
		"frontier":     cfg.Frontier,
		"max_distance": cfg.MaxDistance,
	}).Debug("configuration loaded")

	return nil
}

// loadConfig applies defaults, the YAML file, the env file, the environment
// and finally explicitly set flags.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path := a.flags.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if a.flags.envFile != "" {
		if err := cfg.LoadEnvFile(a.flags.envFile); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.logFormat
	}
	if flags.Changed("frontier") {
		cfg.Frontier = a.flags.frontier
	}
	if flags.Changed("max-distance") {
		cfg.MaxDistance = a.flags.maxDistance
	}

	return cfg, cfg.Validate()
}
