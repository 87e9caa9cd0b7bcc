// Package store persists record sets and character files as indented
// UTF-8 JSON, and reads them back tolerantly through the loose parser.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CandleCat666/DB-dnd-suporter/internal/record"
	"github.com/CandleCat666/DB-dnd-suporter/internal/textenc"
)

// Store reads and writes the entity files of one data directory.
type Store struct {
	Dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Load reads the record set backing file inside the data directory.
func (s *Store) Load(file string) *record.Set {
	return LoadFile(filepath.Join(s.Dir, file))
}

// Save writes the record set to file inside the data directory.
func (s *Store) Save(file string, set *record.Set) error {
	return SaveFile(filepath.Join(s.Dir, file), set)
}

// NameList returns the distinct record names of a data file, in order.
// Used to feed lookups and pickers.
func (s *Store) NameList(file string) []string {
	return s.Load(file).Names()
}

// LoadFile reads a record set from path. A missing, undecodable or
// blank file yields an empty set; malformed content degrades to however
// many records the loose parser can recover.
func LoadFile(path string) *record.Set {
	text, ok := textenc.DecodeFile(path)
	if !ok {
		slog.Debug("no readable data", "path", path)
		return record.NewSet()
	}
	return record.FromRecords(record.ParseLoose(text))
}

// SaveFile writes the set to path as a JSON array of flat objects with
// two-space indentation. Non-ASCII text is written literally. The
// parent directory is created when absent; write failures surface to
// the caller and are not retried.
func SaveFile(path string, set *record.Set) error {
	records := set.Records()
	if records == nil {
		records = []record.Record{}
	}
	return writeJSON(path, records)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
