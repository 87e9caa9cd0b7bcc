package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// ErrExists reports that a character file is already present and the
// caller did not ask to overwrite it.
var ErrExists = errors.New("character file already exists")

// ErrNameRequired reports a save attempt without a character name.
var ErrNameRequired = errors.New("character name is required")

// Character is one saved character card.
type Character struct {
	Name       string `json:"name"`
	Player     string `json:"player"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Background string `json:"background"`
}

// CharacterStore reads and writes one file per character under Dir.
type CharacterStore struct {
	Dir string
}

// NewCharacterStore returns a character store rooted at dir.
func NewCharacterStore(dir string) *CharacterStore {
	return &CharacterStore{Dir: dir}
}

// SafeFileName reduces a character name to a filesystem-safe stem,
// keeping letters, digits, spaces, underscores and hyphens. An empty
// result falls back to "Unnamed".
func SafeFileName(name string) string {
	var b strings.Builder
	for _, c := range name {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == ' ' || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}
	out := strings.TrimRight(b.String(), " ")
	if out == "" {
		return "Unnamed"
	}
	return out
}

// Save writes the character to <Dir>/<safe name>.json. Without
// overwrite an existing file is left untouched and ErrExists returned,
// so the front end can ask before clobbering.
func (s *CharacterStore) Save(c Character, overwrite bool) (string, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "", ErrNameRequired
	}
	c.Name = name
	path := filepath.Join(s.Dir, SafeFileName(name)+".json")
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, ErrExists
		}
	}
	if err := writeJSON(path, c); err != nil {
		return path, err
	}
	return path, nil
}

// Load reads one character file. Unknown keys are ignored; missing keys
// stay blank.
func (s *CharacterStore) Load(path string) (Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Character{}, fmt.Errorf("read character: %w", err)
	}
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return Character{}, fmt.Errorf("parse character %s: %w", path, err)
	}
	return c, nil
}

// List returns the character file names (without extension) in the
// store directory, sorted.
func (s *CharacterStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read characters dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
