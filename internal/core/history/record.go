package history

// Record is one generated link. Medium and Content are nil for the fixed
// variant, which does not persist those fields.
type Record struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	URL       string  `json:"url"`
	Source    string  `json:"source"`
	Medium    *string `json:"medium,omitempty"`
	Campaign  string  `json:"campaign"`
	Content   *string `json:"content,omitempty"`
}

// MediumValue returns the medium or "" when the record has none.
func (r Record) MediumValue() string {
	if r.Medium == nil {
		return ""
	}
	return *r.Medium
}

// ContentValue returns the content or "" when the record has none.
func (r Record) ContentValue() string {
	if r.Content == nil {
		return ""
	}
	return *r.Content
}

// DeleteByIDs returns the records whose id is not in ids, in their original
// order. col is not modified.
func DeleteByIDs(col []Record, ids []string) []Record {
	drop := idSet(ids)
	out := make([]Record, 0, len(col))
	for _, r := range col {
		if _, ok := drop[r.ID]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// SelectByIDs returns the records whose id is in ids, in collection order.
func SelectByIDs(col []Record, ids []string) []Record {
	keep := idSet(ids)
	var out []Record
	for _, r := range col {
		if _, ok := keep[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Newest returns a copy of col ordered most recent first.
func Newest(col []Record) []Record {
	out := make([]Record, len(col))
	for i, r := range col {
		out[len(col)-1-i] = r
	}
	return out
}

// IDs returns the ids of records in order.
func IDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
