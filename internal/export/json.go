package export

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/tidwall/pretty"

	"github.com/sadopc/utmtag/internal/core/history"
)

// JSON renders records as indented JSON in the persisted schema.
func JSON(records []history.Record) ([]byte, error) {
	data, err := history.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  "}), nil
}

// Highlight colours JSON output for a 256-colour terminal. On failure the
// input is returned unchanged.
func Highlight(data []byte, style string) string {
	if style == "" {
		style = "catppuccin-mocha"
	}
	var b strings.Builder
	if err := quick.Highlight(&b, string(data), "json", "terminal256", style); err != nil {
		return string(data)
	}
	return b.String()
}
