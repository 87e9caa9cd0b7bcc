package record

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// Normalize converts one parsed JSON value into a record.
//
// A flat mapping is copied field by field: keys are trimmed, blank keys
// and nil keys are dropped, nil values become "". When the mapping has
// no usable name, one is derived from 名称, then title, then
// fallbackName; a value that still has no name is rejected. A bare
// string wraps as {name: s}. Every other shape is rejected.
func Normalize(value any, fallbackName string) (Record, bool) {
	switch v := value.(type) {
	case map[string]any:
		out := New()
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		hasName := false
		// name first so the canonical file form leads with it
		for _, k := range keys {
			if strings.TrimSpace(k) == "name" {
				out.Set("name", nilToBlank(v[k]))
				hasName = true
				break
			}
		}
		for _, k := range keys {
			kk := strings.TrimSpace(k)
			if kk == "" || kk == "name" {
				continue
			}
			out.Set(kk, nilToBlank(v[k]))
		}
		// derive a name only when the mapping had no name key at all;
		// a present-but-blank name rejects the record
		if !hasName {
			nm := deriveName(v, fallbackName)
			if nm == "" {
				return Record{}, false
			}
			out.Set("name", nm)
		}
		if out.Name() == "" {
			return Record{}, false
		}
		return out, true
	case string:
		out := New()
		out.Set("name", v)
		return out, true
	default:
		return Record{}, false
	}
}

func nilToBlank(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func deriveName(m map[string]any, fallbackName string) string {
	for _, alias := range []string{"名称", "title"} {
		if v, ok := m[alias]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return fmt.Sprint(v)
			}
		}
	}
	return fallbackName
}

// NormalizeDocument converts a fully parsed JSON document of any of the
// accepted shapes into a record sequence:
//
//   - top-level list: each element normalized, rejects dropped
//   - mapping with an "items" list: each item normalized
//   - any other mapping: treated as a name→detail table, map values
//     normalized with the key as fallback name, primitive values wrapped
//     as {name: key, value: v}
//   - anything else: empty
func NormalizeDocument(parsed any) []Record {
	var out []Record
	switch v := parsed.(type) {
	case []any:
		for _, item := range v {
			if rec, ok := Normalize(item, ""); ok {
				out = append(out, rec)
			}
		}
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			for _, item := range items {
				if rec, ok := Normalize(item, ""); ok {
					out = append(out, rec)
				}
			}
			return out
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var rec Record
			var ok bool
			if detail, isMap := v[k].(map[string]any); isMap {
				rec, ok = Normalize(detail, k)
			} else {
				rec, ok = Normalize(map[string]any{"name": k, "value": v[k]}, "")
			}
			if ok {
				out = append(out, rec)
			}
		}
	}
	return out
}

// ParseLoose parses text as one JSON document and normalizes it. When
// the strict parse fails the text is read as JSON-Lines instead: each
// non-blank line is parsed on its own, and lines that fail to parse or
// normalize are skipped without aborting the rest.
func ParseLoose(text string) []Record {
	// json.Valid gates the strict path: it accepts exactly one
	// document, so concatenated objects fall through to line mode.
	if json.Valid([]byte(text)) {
		if parsed, err := oj.ParseString(text); err == nil {
			return NormalizeDocument(parsed)
		}
	}
	var out []Record
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !json.Valid([]byte(line)) {
			continue
		}
		obj, err := oj.ParseString(line)
		if err != nil {
			continue
		}
		if rec, ok := Normalize(obj, ""); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Dedupe keeps the first record for each distinct trimmed name,
// preserving encounter order. Records with a blank name are dropped.
func Dedupe(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	var out []Record
	for _, r := range records {
		nm := r.Name()
		if nm == "" {
			continue
		}
		if _, dup := seen[nm]; dup {
			continue
		}
		seen[nm] = struct{}{}
		out = append(out, r)
	}
	return out
}
