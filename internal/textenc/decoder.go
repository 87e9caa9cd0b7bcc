// Package textenc reads text files whose encoding is unknown by trying a
// fixed list of encodings in order. The list matches what the reference
// data in the wild actually uses: UTF-8 (with or without BOM), the two
// common Chinese codepages, and the Latin fallbacks.
package textenc

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoding is one candidate in the fallback chain.
type Encoding struct {
	Name   string
	decode func([]byte) (string, bool)
}

// Decode attempts to decode data. ok is false when the bytes are not
// valid in this encoding.
func (e Encoding) Decode(data []byte) (string, bool) {
	return e.decode(data)
}

func utf8Decode(stripBOM bool) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		if stripBOM {
			data = bytes.TrimPrefix(data, utf8BOM)
		}
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
}

// xtextDecode adapts an x/text decoder. The x/text decoders substitute
// U+FFFD for bytes the encoding cannot represent instead of failing, so
// a replacement rune in the output is treated as a failed decode. This
// mirrors strict decoding; the single-byte Latin maps define every byte
// and therefore never fail, which keeps them a terminal fallback.
func xtextDecode(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		s := string(out)
		if strings.ContainsRune(s, utf8.RuneError) {
			return "", false
		}
		return s, true
	}
}

// Encodings returns the fallback chain in trial order. Windows-1252
// stands in for the platform "ansi" codepage; iso-8859-1 and latin-1
// are the same map tried twice, kept for parity with the data files'
// provenance.
func Encodings() []Encoding {
	return []Encoding{
		{Name: "utf-8-sig", decode: utf8Decode(true)},
		{Name: "utf-8", decode: utf8Decode(false)},
		{Name: "gbk", decode: xtextDecode(simplifiedchinese.GBK)},
		{Name: "big5", decode: xtextDecode(traditionalchinese.Big5)},
		{Name: "windows-1252", decode: xtextDecode(charmap.Windows1252)},
		{Name: "iso-8859-1", decode: xtextDecode(charmap.ISO8859_1)},
		{Name: "latin-1", decode: xtextDecode(charmap.ISO8859_1)},
	}
}

// DecodeFile reads path and returns the first decode that succeeds and
// contains something other than whitespace. A missing file, an
// undecodable file, or a blank file all report ok=false; callers treat
// that as "no data" rather than an error.
func DecodeFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return DecodeBytes(data)
}

// DecodeBytes is DecodeFile for in-memory content.
func DecodeBytes(data []byte) (string, bool) {
	for _, enc := range Encodings() {
		s, ok := enc.Decode(data)
		if ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
