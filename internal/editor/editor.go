// Package editor mutates one open record set through schema-aware
// operations. Every operation either applies fully or returns a typed
// error with the set untouched; the command layer turns those errors
// into messages instead of dialogs.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CandleCat666/DB-dnd-suporter/api"
	"github.com/CandleCat666/DB-dnd-suporter/internal/ingest"
	"github.com/CandleCat666/DB-dnd-suporter/internal/merge"
	"github.com/CandleCat666/DB-dnd-suporter/internal/record"
	"github.com/CandleCat666/DB-dnd-suporter/internal/store"
)

var (
	// ErrNameRequired reports a blank record name.
	ErrNameRequired = errors.New("name is required")
	// ErrExists reports a name collision.
	ErrExists = errors.New("name already exists")
	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrNoRows reports a CSV file with no usable data rows.
	ErrNoRows = errors.New("no usable rows in CSV")
	// ErrNameColumn reports an import without a resolvable name column.
	ErrNameColumn = errors.New("no name column: pass one explicitly")
)

// RequiredError reports a blank required field.
type RequiredError struct {
	Field api.Field
}

func (e *RequiredError) Error() string {
	label := e.Field.Label
	if label == "" {
		label = e.Field.Key
	}
	return fmt.Sprintf("required field %q is blank", label)
}

// Session is one open entity file under edit.
type Session struct {
	Kind api.Kind
	Path string

	store *store.Store
	set   *record.Set
}

// Open loads the kind's data file from the store's directory. A missing
// or unreadable file opens an empty session.
func Open(kind api.Kind, st *store.Store) *Session {
	return &Session{
		Kind:  kind,
		Path:  kind.File,
		store: st,
		set:   st.Load(kind.File),
	}
}

// Len reports the number of records in the session.
func (s *Session) Len() int { return s.set.Len() }

// Records returns the records in order.
func (s *Session) Records() []record.Record { return s.set.Records() }

// Names returns the record names, optionally filtered by a
// case-insensitive substring.
func (s *Session) Names(filter string) []string {
	names := s.set.Names()
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return names
	}
	var out []string
	for _, nm := range names {
		if strings.Contains(strings.ToLower(nm), q) {
			out = append(out, nm)
		}
	}
	return out
}

// Get returns the record with the given name.
func (s *Session) Get(name string) (record.Record, error) {
	rec, ok := s.set.Get(name)
	if !ok {
		return record.Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rec, nil
}

// Add creates a record with the given name and schema defaults for the
// remaining fields.
func (s *Session) Add(name string) (record.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return record.Record{}, ErrNameRequired
	}
	if s.set.Has(name) {
		return record.Record{}, fmt.Errorf("%w: %q", ErrExists, name)
	}
	rec := record.New()
	rec.Set("name", name)
	for _, f := range s.Kind.Fields {
		if f.Key == "name" {
			continue
		}
		rec.Set(f.Key, f.DefaultValue())
	}
	if err := s.set.Append(rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

// Duplicate copies an existing record under "name (copy i)", taking the
// smallest free i >= 2.
func (s *Session) Duplicate(name string) (record.Record, error) {
	src, ok := s.set.Get(name)
	if !ok {
		return record.Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	base := src.Name()
	copyName := ""
	for i := 2; ; i++ {
		copyName = fmt.Sprintf("%s (copy %d)", base, i)
		if !s.set.Has(copyName) {
			break
		}
	}
	rec := src.Clone()
	rec.Set("name", copyName)
	if err := s.set.Append(rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

// Delete removes a record.
func (s *Session) Delete(name string) error {
	if !s.set.Delete(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Update rebuilds the record stored under oldName from the schema's
// fields, taking values from updates and falling back to the current
// record. Required fields must end up non-blank; renaming onto another
// existing record is rejected. Nothing is mutated on failure.
func (s *Session) Update(oldName string, updates map[string]string) (record.Record, error) {
	cur, ok := s.set.Get(oldName)
	if !ok {
		return record.Record{}, fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	rec := record.New()
	for _, f := range s.Kind.Fields {
		if v, given := updates[f.Key]; given {
			rec.Set(f.Key, v)
		} else if old, has := cur.Get(f.Key); has {
			rec.Set(f.Key, old)
		} else {
			rec.Set(f.Key, f.DefaultValue())
		}
	}
	for _, f := range s.Kind.Fields {
		if f.Required && strings.TrimSpace(rec.GetString(f.Key)) == "" {
			return record.Record{}, &RequiredError{Field: f}
		}
	}
	newName := rec.Name()
	if newName == "" {
		return record.Record{}, ErrNameRequired
	}
	if newName != strings.TrimSpace(oldName) && s.set.Has(newName) {
		return record.Record{}, fmt.Errorf("%w: %q", ErrExists, newName)
	}
	if err := s.set.Replace(oldName, rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

// Save writes the session back to its backing file.
func (s *Session) Save() error {
	return s.store.Save(s.Path, s.set)
}

// SaveAs writes the session to an arbitrary path and keeps targeting
// the original backing file for later saves through the store.
func (s *Session) SaveAs(path string) error {
	return store.SaveFile(path, s.set)
}

// ImportCSV merges the rows of a CSV file into the session. When
// nameColumn is blank the "name" header is used if present, otherwise
// the import is refused so the caller can pick a column. Returns the
// merge counts.
func (s *Session) ImportCSV(path, nameColumn string, policy merge.Policy) (merge.Counts, error) {
	rows := ingest.ReadRows(path)
	if len(rows) == 0 {
		return merge.Counts{}, ErrNoRows
	}
	if nameColumn == "" {
		if !hasColumn(rows, "name") {
			return merge.Counts{}, ErrNameColumn
		}
		nameColumn = "name"
	}
	return merge.Merge(s.set, rows, nameColumn, policy, s.Kind.FieldKeys())
}

func hasColumn(rows []map[string]string, col string) bool {
	for _, r := range rows {
		if _, ok := r[col]; ok {
			return true
		}
	}
	return false
}
