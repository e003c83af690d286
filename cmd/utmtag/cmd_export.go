package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/utmtag/internal/config"
	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/export"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

type exportOptions struct {
	all    bool
	format string
	output string
	color  bool
}

func exportCmd() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	allFlag := fs.Bool("all", false, "Export the whole history")
	formatFlag := fs.String("format", "text", "Export format: text, json")
	outputFlag := fs.String("output", "", "Output file path, - for stdout (default: text goes to utm_selected_<date>.txt in export_dir, json to stdout)")
	colorFlag := fs.Bool("color", false, "Syntax-highlight JSON written to stdout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag export [<id>...] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Export links from the history.\n\n")
		fmt.Fprintf(os.Stderr, "Supported formats: text, json\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  utmtag export 1760612585000 1760612590000\n")
		fmt.Fprintf(os.Stderr, "  utmtag export --all --format json --color\n")
		fmt.Fprintf(os.Stderr, "  utmtag export --all --output links.txt\n")
	}

	ids := parseArgs(fs, os.Args[2:])
	opts := exportOptions{all: *allFlag, format: *formatFlag, output: *outputFlag, color: *colorFlag}

	switch opts.format {
	case "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format %q (must be text or json)\n", opts.format)
		os.Exit(2)
	}
	if !opts.all && len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error: pass link ids or --all\n\n")
		fs.Usage()
		os.Exit(2)
	}

	cfg, book, closeStore := mustOpenBook()
	defer closeStore()

	if err := runExport(os.Stdout, cfg, book, ids, opts, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}

func runExport(w io.Writer, cfg config.Config, book *linkbook.Book, ids []string, opts exportOptions, now time.Time) error {
	var records []history.Record
	if opts.all {
		records = book.Records()
	} else {
		records = book.Select(ids)
	}
	if len(records) == 0 {
		return fmt.Errorf("nothing to export")
	}

	if opts.format == "text" && opts.output == "" {
		path, err := export.WriteFile(cfg.ExportDir, records, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Exported %d %s to %s\n", len(records), plural(len(records), "link", "links"), path)
		return nil
	}

	var data []byte
	switch opts.format {
	case "json":
		b, err := export.JSON(records)
		if err != nil {
			return err
		}
		data = b
	default:
		data = []byte(export.Text(records))
	}

	if opts.output == "" || opts.output == "-" {
		if opts.format == "json" && opts.color {
			_, err := io.WriteString(w, export.Highlight(data, theme.Resolve(cfg.Theme).Chroma))
			return err
		}
		_, err := w.Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(w, "Exported %d %s to %s\n", len(records), plural(len(records), "link", "links"), opts.output)
	return nil
}
