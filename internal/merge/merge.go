// Package merge resolves name collisions when CSV rows are imported
// into an existing record set.
package merge

import (
	"fmt"
	"strings"

	"github.com/CandleCat666/DB-dnd-suporter/internal/record"
)

// Policy selects how a row whose name already exists is handled.
type Policy string

const (
	// Overwrite replaces the existing record in place.
	Overwrite Policy = "overwrite"
	// Skip drops the incoming row.
	Skip Policy = "skip"
	// Rename keeps both, appending the row under "name (i)".
	Rename Policy = "rename"
)

// ParsePolicy validates a policy string.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case Overwrite, Skip, Rename:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown merge policy %q (want overwrite, skip or rename)", s)
	}
}

// Counts summarizes one merge run.
type Counts struct {
	Added   int
	Updated int
	Skipped int
	Renamed int
}

func (c Counts) String() string {
	return fmt.Sprintf("added %d, updated %d, renamed %d, skipped %d",
		c.Added, c.Updated, c.Renamed, c.Skipped)
}

// Merge applies the incoming rows to set under the given policy.
//
// Each row's name comes from nameColumn; rows with a blank name are
// dropped without being counted. The candidate record is restricted to
// fieldKeys (missing fields become "") plus the resolved name. Under
// Rename the suffix search starts at 2 and re-checks collisions against
// records appended earlier in the same batch, so two incoming "A" rows
// against an existing "A" become "A (2)" and "A (3)".
func Merge(set *record.Set, rows []map[string]string, nameColumn string, policy Policy, fieldKeys []string) (Counts, error) {
	var counts Counts
	for _, row := range rows {
		nm := strings.TrimSpace(row[nameColumn])
		if nm == "" {
			continue
		}
		rec := record.New()
		for _, k := range fieldKeys {
			rec.Set(k, row[k])
		}
		rec.Set("name", nm)

		if !set.Has(nm) {
			if err := set.Append(rec); err != nil {
				return counts, err
			}
			counts.Added++
			continue
		}
		switch policy {
		case Skip:
			counts.Skipped++
		case Overwrite:
			if err := set.Replace(nm, rec); err != nil {
				return counts, err
			}
			counts.Updated++
		case Rename:
			rec.Set("name", nextFree(set, nm))
			if err := set.Append(rec); err != nil {
				return counts, err
			}
			counts.Renamed++
		default:
			return counts, fmt.Errorf("unknown merge policy %q", policy)
		}
	}
	return counts, nil
}

// nextFree finds the smallest suffix i >= 2 such that "name (i)" is not
// taken.
func nextFree(set *record.Set, name string) string {
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if !set.Has(candidate) {
			return candidate
		}
	}
}
