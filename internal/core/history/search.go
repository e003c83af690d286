package history

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchSource adapts records to fuzzy.Source. Each record is matched on
// its url, source, medium, campaign and content.
type searchSource []Record

func (s searchSource) String(i int) string {
	r := s[i]
	return strings.Join([]string{r.URL, r.Source, r.MediumValue(), r.Campaign, r.ContentValue()}, " ")
}

func (s searchSource) Len() int { return len(s) }

// Search returns the records whose url, source, medium, campaign or
// content match query, best match first. An empty
// query returns records unchanged.
func Search(records []Record, query string) []Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}
	matches := fuzzy.FindFrom(query, searchSource(records))
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, records[m.Index])
	}
	return out
}
