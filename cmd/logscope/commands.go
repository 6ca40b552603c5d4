package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/gabssanto/logscope/internal/completions"
	"github.com/gabssanto/logscope/internal/scan"
)

// RulesCommand creates the rules command
func RulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "Show the language detection and pattern table",
		Action: func(ctx context.Context, c *cli.Command) error {
			return handleRules(c)
		},
	}
}

func handleRules(c *cli.Command) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LANGUAGE", "EXTENSION", "LOGGER PATTERN", "BAD PATTERN")

	// Rows follow detection priority
	for _, r := range scan.DefaultRules().Rules() {
		t.Row(r.Name, r.Extension, r.Logger.String(), r.Bad.String())
	}

	_, err := fmt.Fprintln(stdout(c), t.Render())
	return err
}

// DetectCommand creates the detect command
func DetectCommand() *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "Detect the language of a single service directory",
		ArgsUsage: "<dir>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.Args().Present() {
				return fmt.Errorf("usage: logscope detect <dir>")
			}
			return handleDetect(c, c.Args().First())
		},
	}
}

func handleDetect(c *cli.Command, dir string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg, "detect")

	absPath, err := resolvePath(dir)
	if err != nil {
		return err
	}

	rules := scan.DefaultRules()
	lang, err := scan.DetectLanguage(absPath, rules)
	if err != nil {
		return err
	}
	log.Debug().Str("dir", absPath).Str("language", string(lang)).Msg("language detected")

	if rule, ok := rules.Lookup(lang); ok {
		fmt.Fprintf(stdout(c), "%s: %s (%s)\n", absPath, rule.Name, lang)
		return nil
	}
	fmt.Fprintf(stdout(c), "%s: unknown language\n", absPath)
	return nil
}

// CompletionsCommand creates the completions command
func CompletionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "completions",
		Usage:     "Generate shell completions (bash, zsh, fish)",
		ArgsUsage: "<shell>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.Args().Present() {
				return fmt.Errorf("usage: logscope completions <bash|zsh|fish>")
			}
			script, err := completions.Generate(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprint(stdout(c), script)
			return nil
		},
	}
}

// VersionCommand creates the version command
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Fprintf(stdout(c), "logscope version %s\n", Version)
			return nil
		},
	}
}
