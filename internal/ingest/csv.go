// Package ingest reads external CSV tables into row maps for import.
package ingest

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strings"

	"github.com/CandleCat666/DB-dnd-suporter/internal/textenc"
)

// delimiters considered during sniffing, in preference order.
var delimiters = []rune{',', ';', '\t', '|'}

const sniffWindow = 4096

// ReadRows reads a CSV file with unknown encoding and delimiter and
// returns one map per data row, keyed by header.
//
// The delimiter is sniffed over the first 4096 characters of the first
// successful text decode. Decoding and CSV parsing are then retried
// jointly per encoding: an encoding only counts when the parse under
// the sniffed delimiter yields rows. The first row is the header; a
// second row containing any non-blank cell is treated as a
// human-readable description row and skipped, while a fully blank
// second row is data. Fully blank data rows are dropped, missing cells
// default to "", and cells beyond the header count are ignored.
func ReadRows(path string) []map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	sample, ok := textenc.DecodeBytes(data)
	if !ok {
		return nil
	}
	delim := SniffDelimiter(sample)

	var rows [][]string
	for _, enc := range textenc.Encodings() {
		text, ok := enc.Decode(data)
		if !ok {
			continue
		}
		r := csv.NewReader(strings.NewReader(text))
		r.Comma = delim
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		parsed, err := r.ReadAll()
		if err != nil || len(parsed) == 0 {
			continue
		}
		slog.Debug("csv parsed", "path", path, "encoding", enc.Name, "delimiter", string(delim), "rows", len(parsed))
		rows = parsed
		break
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	dataRows := rows[1:]
	if len(rows) >= 2 && anyNonBlank(rows[1]) {
		dataRows = rows[2:]
	}

	var out []map[string]string
	for _, row := range dataRows {
		if !anyNonBlank(row) {
			continue
		}
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}

func anyNonBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}

// SniffDelimiter picks the most plausible delimiter for sample. A
// delimiter that appears the same non-zero number of times on every
// non-blank line wins; otherwise the highest total count does. When no
// candidate appears at all the default is comma.
func SniffDelimiter(sample string) rune {
	if len(sample) > sniffWindow {
		sample = sample[:sniffWindow]
	}
	var lines []string
	for _, ln := range strings.Split(sample, "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestTotal := 0
	for _, d := range delimiters {
		consistent := true
		total := 0
		first := strings.Count(lines[0], string(d))
		for _, ln := range lines {
			n := strings.Count(ln, string(d))
			total += n
			if n != first {
				consistent = false
			}
		}
		if consistent && first > 0 {
			return d
		}
		if total > bestTotal {
			best = d
			bestTotal = total
		}
	}
	return best
}
