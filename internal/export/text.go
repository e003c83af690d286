// Package export renders selected history records for saving or sharing.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/utmtag/internal/core/history"
)

const (
	textHeader    = "=== Generated UTM links ==="
	textSeparator = "----------------------------------------"
)

// Text renders records as human-readable blocks, one per record, in the
// order given.
func Text(records []history.Record) string {
	var b strings.Builder
	b.WriteString(textHeader)
	b.WriteString("\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "[Created: %s]\n", r.Timestamp)
		fmt.Fprintf(&b, "Link: %s\n", r.URL)
		if r.Medium != nil {
			fmt.Fprintf(&b, "Medium: %s\n", *r.Medium)
		}
		fmt.Fprintf(&b, "Source: %s\n", r.Source)
		fmt.Fprintf(&b, "Campaign: %s\n", r.Campaign)
		if c := r.ContentValue(); c != "" {
			fmt.Fprintf(&b, "Content: %s\n", c)
		}
		b.WriteString(textSeparator)
		b.WriteString("\n")
	}
	return b.String()
}

// Filename returns the export file name for the given day.
func Filename(now time.Time) string {
	return "utm_selected_" + now.Format("2006-01-02") + ".txt"
}

// WriteFile writes Text(records) into dir under Filename(now) and returns
// the full path.
func WriteFile(dir string, records []history.Record, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(Text(records)), 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
