package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/app"
	"github.com/sadopc/utmtag/internal/config"
	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "generate":
			generateCmd()
			return
		case "history":
			historyCmd()
			return
		case "delete":
			deleteCmd()
			return
		case "export":
			exportCmd()
			return
		case "init":
			initCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			fmt.Println(version.String())
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `utmtag - build UTM-tagged links and keep a history of them

Usage:
  utmtag [flags]                    Launch TUI (interactive mode)
  utmtag <command> [args] [flags]   Run a subcommand

Commands:
  generate    Tag a URL and add it to the history
  history     List generated links, newest first
  delete      Delete links from the history by id
  export      Export links as text or JSON
  init        Write a config file
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --version   Print version and exit

Run 'utmtag <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	cfg := config.Load()

	// the alt screen owns stdout and stderr, so logs go to a file
	logFile, err := openLogFile(cfg)
	if err != nil {
		setupLogging(io.Discard, cfg)
	} else {
		defer logFile.Close()
		setupLogging(logFile, cfg)
	}

	sink := &app.WarningSink{}
	book, closeStore, err := openBook(cfg, sink.Add)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	p := tea.NewProgram(
		app.New(book, cfg, sink),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openBook opens the storage database named by cfg and loads the history.
// warn, if non-nil, receives soft storage failures.
func openBook(cfg config.Config, warn func(error)) (*linkbook.Book, func(), error) {
	opts, err := cfg.BookOptions()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	path := cfg.StoragePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating data dir: %w", err)
	}
	kv, err := history.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}

	storeOpts := []history.Option{history.WithKey(cfg.StorageKey)}
	if warn != nil {
		storeOpts = append(storeOpts, history.WithWarningHandler(warn))
		opts.Warn = warn
	}
	store := history.NewStore(kv, storeOpts...)

	closeStore := func() {
		if err := kv.Close(); err != nil {
			slog.Warn("closing storage", "err", err)
		}
	}
	return linkbook.Open(store, opts), closeStore, nil
}

// mustOpenBook loads config, sets up stderr logging and opens the history,
// exiting on failure. Used by the headless subcommands.
func mustOpenBook() (config.Config, *linkbook.Book, func()) {
	cfg := config.Load()
	setupLogging(os.Stderr, cfg)

	book, closeStore, err := openBook(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, book, closeStore
}

func setupLogging(w io.Writer, cfg config.Config) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(h))
}

func openLogFile(cfg config.Config) (*os.File, error) {
	dir := cfg.ResolveDataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "utmtag.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// parseArgs parses fs allowing flags after positional arguments, and
// returns the positionals.
func parseArgs(fs *flag.FlagSet, args []string) []string {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			os.Exit(2)
		}
		if fs.NArg() == 0 {
			return positional
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}
