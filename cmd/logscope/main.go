package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/gabssanto/logscope/internal/config"
	"github.com/gabssanto/logscope/internal/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Optional .env with LOGSCOPE_* overrides
	_ = godotenv.Load()

	return newApp(os.Stdout).Run(context.Background(), args)
}

// newApp builds the command tree writing reports to w. Without a subcommand
// the root command runs an audit.
func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "logscope",
		Writer:    w,
		Usage:     "Audit structured logger usage across a multi-service code base",
		ArgsUsage: "[root]",
		Flags:     append(globalFlags(), auditFlags()...),
		Action:    auditAction,
		Commands: []*cli.Command{
			AuditCommand(),
			RulesCommand(),
			DetectCommand(),
			CompletionsCommand(),
			VersionCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Configuration file (YAML or TOML)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Diagnostic log level (trace, debug, info, warn, error, disabled)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Diagnostic log format (console, json)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug diagnostics",
		},
	}
}

// loadConfig resolves settings from the config file, the environment and the global flags.
// An explicit --config path must exist; the implicit .logscope.yaml is optional.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if cmd.Bool("debug") {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// newLogger builds the diagnostic logger for a command
func newLogger(cfg *config.Config, component string) *zerolog.Logger {
	l := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return logger.Named(l, component)
}

// stdout returns the writer reports are printed to
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// resolvePath converts a path (including . and ~) to an absolute path
func resolvePath(path string) (string, error) {
	// Handle current directory
	if path == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return cwd, nil
	}

	// Expand home directory
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}
