package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/export"
)

func historyCmd() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	searchFlag := fs.String("search", "", "Fuzzy filter over url, source, medium and campaign")
	jsonFlag := fs.Bool("json", false, "Print the records as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag history [flags]\n\n")
		fmt.Fprintf(os.Stderr, "List generated links, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  utmtag history\n")
		fmt.Fprintf(os.Stderr, "  utmtag history --search autumn --json\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, book, closeStore := mustOpenBook()
	defer closeStore()

	records := history.Search(book.Newest(), *searchFlag)
	if *jsonFlag {
		data, err := export.JSON(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeStore()
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}
	printHistory(os.Stdout, records, cfg.TimestampLayout, time.Now())
}

// printHistory writes one entry per record: id, timestamp with relative age,
// then the link.
func printHistory(w io.Writer, records []history.Record, layout string, now time.Time) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No links.")
		return
	}
	for _, r := range records {
		age := ""
		if ts, err := time.ParseInLocation(layout, r.Timestamp, now.Location()); err == nil {
			age = " (" + humanize.RelTime(ts, now, "ago", "from now") + ")"
		}
		fmt.Fprintf(w, "%s  %s%s\n    %s\n", r.ID, r.Timestamp, age, r.URL)
	}
}
