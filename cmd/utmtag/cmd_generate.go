package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sadopc/utmtag/internal/app"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/core/utm"
)

func generateCmd() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	sourceFlag := fs.String("source", "", "utm_source (default from config)")
	mediumFlag := fs.String("medium", "", "utm_medium (ignored by the fixed variant)")
	campaignFlag := fs.String("campaign", "", "utm_campaign (required by the fixed variant)")
	contentFlag := fs.String("content", "", "utm_content (ignored by the fixed variant)")
	copyFlag := fs.Bool("copy", false, "Also copy the link to the clipboard")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag generate <url> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Tag a URL with UTM parameters and add it to the history.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  utmtag generate https://example.com/page --source google --medium cpc\n")
		fmt.Fprintf(os.Stderr, "  utmtag generate https://example.com --campaign autumn --copy\n")
	}

	args := parseArgs(fs, os.Args[2:])
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one URL is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	_, book, closeStore := mustOpenBook()
	defer closeStore()

	in := linkbook.Input{
		BaseURL: args[0],
		Params: utm.Params{
			Source:   *sourceFlag,
			Medium:   *mediumFlag,
			Campaign: *campaignFlag,
			Content:  *contentFlag,
		},
	}
	var write func(string) error
	if *copyFlag {
		write = clipboard.WriteAll
	}
	if err := runGenerate(os.Stdout, book, in, write); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}

// runGenerate tags in, records it and prints the link. If copyLink is non-nil
// the link is also copied; a copy failure is only reported.
func runGenerate(w io.Writer, book *linkbook.Book, in linkbook.Input, copyLink func(string) error) error {
	rec, err := book.Generate(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rec.URL)

	if copyLink != nil {
		if err := copyLink(rec.URL); err != nil {
			slog.Warn("copy failed", "err", fmt.Errorf("%w: %v", app.ErrClipboard, err))
			fmt.Fprintln(os.Stderr, "Could not copy to the clipboard, copy the link manually.")
		}
	}
	return nil
}
