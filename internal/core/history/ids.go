package history

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDScheme selects how record ids are generated.
type IDScheme string

const (
	// IDTimestamp uses the creation time in Unix milliseconds.
	IDTimestamp IDScheme = "timestamp"
	// IDUUID uses a time-ordered UUIDv7.
	IDUUID IDScheme = "uuid"
)

// ParseIDScheme converts a config value into an IDScheme.
func ParseIDScheme(s string) (IDScheme, error) {
	switch IDScheme(s) {
	case IDTimestamp, "":
		return IDTimestamp, nil
	case IDUUID:
		return IDUUID, nil
	default:
		return "", fmt.Errorf("unknown id scheme %q (use timestamp or uuid)", s)
	}
}

// NextID returns an id for a record created at now that is not used in col.
// Timestamp ids are bumped past the largest numeric id already present, so
// two records created in the same millisecond still get distinct ids.
func NextID(scheme IDScheme, col []Record, now time.Time) (string, error) {
	if scheme == IDUUID {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating id: %w", err)
		}
		return id.String(), nil
	}

	next := now.UnixMilli()
	for _, r := range col {
		if n, err := strconv.ParseInt(r.ID, 10, 64); err == nil && n >= next {
			next = n + 1
		}
	}
	return strconv.FormatInt(next, 10), nil
}
