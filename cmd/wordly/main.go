package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hpungsan/wordly/internal/config"
	"github.com/hpungsan/wordly/internal/db"
	"github.com/hpungsan/wordly/internal/dictionary"
	"github.com/hpungsan/wordly/internal/history"
	"github.com/hpungsan/wordly/internal/logging"
	"github.com/hpungsan/wordly/internal/mcp"
	"github.com/hpungsan/wordly/internal/ops"
	"github.com/hpungsan/wordly/internal/source"
	"github.com/hpungsan/wordly/internal/wordlist"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"today": true, "define": true, "history": true, "show": true,
	"latest": true, "clear": true, "serve": true,
	"help": true,
}

// deps holds everything the commands and servers operate on.
type deps struct {
	src   ops.WordSource
	store ops.HistoryStore
	cfg   *config.Config
	log   *slog.Logger
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
                          _ _
  __      _____  _ __ __| | |_   _
  \ \ /\ / / _ \| '__/ _' | | | | |
   \ V  V / (_) | | | (_| | | |_| |
    \_/\_/ \___/|_|  \__,_|_|\__, |
                             |___/

  A word a day, kept locally

  Usage: wordly <command> [options]
         wordly --help

  MCP server mode requires piped input.`)
}

// setup opens the database and wires the word source and history store.
func setup(baseDir string) (*deps, func(), error) {
	database, err := db.Init(baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	db.ConfigurePool(database, cfg)

	// Logs go to stderr; stdout carries command output and the MCP stream.
	logger := logging.New(os.Stderr, cfg.LogLevel)

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logger.Warn("unknown tools in disabled_tools", "tools", unknown)
	}

	list, err := wordlist.Load(cfg.WordListPath)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load word list: %w", err)
	}

	client := dictionary.NewClient(cfg.APIEndpoint, cfg.LookupTimeout())

	d := &deps{
		src:   source.New(client, list, source.WithLogger(logger)),
		store: history.New(db.NewKV(database), history.WithLogger(logger)),
		cfg:   cfg,
		log:   logger,
	}
	return d, func() { database.Close() }, nil
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if !isCLIMode() && len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'wordly --help' for usage.\n")
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	d, cleanup, err := setup(filepath.Join(homeDir, ".wordly"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(d, cleanup))
}

// run executes the CLI or MCP server and returns the process exit code.
// cleanup runs before returning so deferred closes are not skipped by os.Exit.
func run(d *deps, cleanup func()) int {
	defer cleanup()

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(d)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	// MCP server mode (default)
	if err := mcp.Run(d.src, d.store, d.cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
