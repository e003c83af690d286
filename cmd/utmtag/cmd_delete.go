package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sadopc/utmtag/internal/core/linkbook"
)

func deleteCmd() {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yesFlag := fs.Bool("yes", false, "Do not ask for confirmation")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag delete <id>... [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Delete links from the history. Ids are listed by 'utmtag history'.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	ids := parseArgs(fs, os.Args[2:])
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one id is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	_, book, closeStore := mustOpenBook()
	defer closeStore()

	var in io.Reader
	if !*yesFlag {
		in = os.Stdin
	}
	n, err := runDelete(os.Stdout, in, book, ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeStore()
		os.Exit(1)
	}
	fmt.Printf("Deleted %d %s\n", n, plural(n, "link", "links"))
}

// runDelete removes ids from book. When in is non-nil the user is asked to
// confirm on w first; declining deletes nothing.
func runDelete(w io.Writer, in io.Reader, book *linkbook.Book, ids []string) (int, error) {
	matched := book.Select(ids)
	if len(matched) == 0 {
		return 0, fmt.Errorf("no links match %s", strings.Join(ids, ", "))
	}

	if in != nil {
		for _, r := range matched {
			fmt.Fprintf(w, "  %s  %s\n", r.ID, r.URL)
		}
		if !confirm(in, w, fmt.Sprintf("Delete %d %s?", len(matched), plural(len(matched), "link", "links"))) {
			return 0, nil
		}
	}
	return book.Delete(ids), nil
}

func confirm(in io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
