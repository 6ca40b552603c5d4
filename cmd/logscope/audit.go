package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gabssanto/logscope/internal/config"
	"github.com/gabssanto/logscope/internal/report"
	"github.com/gabssanto/logscope/internal/scan"
)

// exitCheckFailed is the exit code for --check when a service is not compliant
const exitCheckFailed = 2

// AuditCommand creates the audit command
func AuditCommand() *cli.Command {
	return &cli.Command{
		Name:      "audit",
		Usage:     "Report logger usage for every service directory under root",
		ArgsUsage: "[root]",
		Flags:     auditFlags(),
		Action:    auditAction,
	}
}

// auditFlags returns the flags shared by the audit command and the root command
func auditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format (text, json, yaml)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Abort on the first file that cannot be read as text",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "Exit with status 2 when a service lacks a logger or prints directly",
		},
		&cli.BoolFlag{
			Name:  "pick",
			Usage: "Choose the services to audit interactively",
		},
		&cli.BoolFlag{
			Name:  "skip-hidden",
			Usage: "Skip service directories whose name starts with '.'",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "Service directory name to skip. Can be used multiple times",
		},
	}
}

func auditAction(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	applyAuditFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return handleAudit(c, cfg)
}

// applyAuditFlags overrides config values with explicitly set audit flags
func applyAuditFlags(c *cli.Command, cfg *config.Config) {
	if c.Args().Present() {
		cfg.Root = c.Args().First()
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("check") {
		cfg.Check = c.Bool("check")
	}
	if c.IsSet("skip-hidden") {
		cfg.SkipHidden = c.Bool("skip-hidden")
	}
	cfg.Ignore = append(cfg.Ignore, c.StringSlice("ignore")...)
}

func handleAudit(c *cli.Command, cfg *config.Config) error {
	log := newLogger(cfg, "audit")

	root, err := resolvePath(cfg.Root)
	if err != nil {
		return err
	}

	// Verify it's a directory
	info, err := os.Stat(root)
	if err != nil {
		return &scan.DirectoryAccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	opts := scan.Options{
		Strict:     cfg.Strict,
		SkipHidden: cfg.SkipHidden,
		Ignore:     cfg.Ignore,
	}
	rules := scan.DefaultRules()

	if c.Bool("pick") {
		names, err := scan.NewAuditor(rules, opts, log).ListServices(root)
		if err != nil {
			return err
		}
		selected, err := scan.SelectServices(names)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Fprintln(stdout(c), "No services selected. Nothing to audit.")
			return nil
		}
		opts.Only = selected
	}

	renderer, err := report.New(cfg.Format, stdout(c))
	if err != nil {
		return err
	}

	auditor := scan.NewAuditor(rules, opts, log)
	records, err := auditor.Run(root, renderer.Record)
	if err != nil {
		return err
	}

	summary := report.Summarize(records)
	if err := renderer.Close(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if cfg.Check && summary.Failing() {
		return cli.Exit(fmt.Sprintf("%d services without logger, %d with bad logging practice",
			summary.WithoutLogger, summary.BadPractice), exitCheckFailed)
	}
	return nil
}
