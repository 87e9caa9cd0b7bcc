// Package record implements the flat, schema-free record model shared by
// every data file: an insertion-ordered string-keyed map guaranteed to
// carry a non-empty name once normalized, plus the order-preserving,
// name-deduplicated set that backs one file.
package record

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one entity (race, class, background, character). Keys keep
// insertion order; values are whatever primitives the source JSON held.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New returns an empty record.
func New() Record {
	return Record{fields: orderedmap.New[string, any]()}
}

// Set stores a value, keeping the key's original position when it
// already exists.
func (r Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Get returns the raw value for key.
func (r Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

// GetString returns the value for key rendered as text, or "" when the
// key is absent or nil.
func (r Record) GetString(key string) string {
	v, ok := r.fields.Get(key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Name returns the trimmed name of the record.
func (r Record) Name() string {
	return strings.TrimSpace(r.GetString("name"))
}

// Keys returns all keys in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Len reports the number of fields.
func (r Record) Len() int {
	return r.fields.Len()
}

// Clone returns a shallow copy with independent key order.
func (r Record) Clone() Record {
	out := New()
	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}

// MarshalJSON writes the record as a flat object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

// Set is an ordered sequence of records unique by trimmed name. The
// first occurrence of a name wins; later duplicates are dropped.
type Set struct {
	records []Record
	index   map[string]int
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// FromRecords builds a set from a normalized sequence, applying
// dedup-by-name while preserving encounter order.
func FromRecords(records []Record) *Set {
	s := NewSet()
	for _, r := range Dedupe(records) {
		s.records = append(s.records, r)
		s.index[r.Name()] = len(s.records) - 1
	}
	return s
}

// Len reports the number of records.
func (s *Set) Len() int { return len(s.records) }

// Records returns the underlying ordered slice.
func (s *Set) Records() []Record { return s.records }

// Has reports whether a record with the given name exists.
func (s *Set) Has(name string) bool {
	_, ok := s.index[strings.TrimSpace(name)]
	return ok
}

// Get returns the record with the given name.
func (s *Set) Get(name string) (Record, bool) {
	i, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Append adds a record at the end. It fails when the record has no name
// or the name is already taken.
func (s *Set) Append(r Record) error {
	nm := r.Name()
	if nm == "" {
		return fmt.Errorf("record has no name")
	}
	if _, ok := s.index[nm]; ok {
		return fmt.Errorf("record %q already exists", nm)
	}
	s.records = append(s.records, r)
	s.index[nm] = len(s.records) - 1
	return nil
}

// Replace swaps the record stored under name, keeping its position.
// The replacement may carry a different name as long as that name is
// not taken by another record.
func (s *Set) Replace(name string, r Record) error {
	i, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return fmt.Errorf("record %q not found", name)
	}
	newName := r.Name()
	if newName == "" {
		return fmt.Errorf("record has no name")
	}
	if j, taken := s.index[newName]; taken && j != i {
		return fmt.Errorf("record %q already exists", newName)
	}
	delete(s.index, s.records[i].Name())
	s.records[i] = r
	s.index[newName] = i
	return nil
}

// Delete removes the record with the given name.
func (s *Set) Delete(name string) bool {
	i, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.rebuild()
	return true
}

// Names returns all record names in order.
func (s *Set) Names() []string {
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.Name()
	}
	return names
}

func (s *Set) rebuild() {
	s.index = make(map[string]int, len(s.records))
	for i, r := range s.records {
		s.index[r.Name()] = i
	}
}
