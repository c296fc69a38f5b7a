// Package textdecode turns raw file bytes into a Go string, detecting the
// source character encoding when it is not UTF-8.
package textdecode

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrUndecodable marks byte content that could not be decoded to text.
var ErrUndecodable = errors.New("undecodable text")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode converts data to a string. It returns the decoded text and the name
// of the character encoding it decided on. The order of preference is: BOM,
// valid UTF-8, then a chardet best guess decoded through the IANA registry.
// Failures wrap ErrUndecodable.
func Decode(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "UTF-8", nil
	}

	if text, charset, ok := decodeBOM(data); ok {
		return text, charset, nil
	}

	if utf8.Valid(data) {
		return string(data), "UTF-8", nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", "", fmt.Errorf("detect charset: %w", ErrUndecodable)
	}

	enc, err := ianaindex.IANA.Encoding(result.Charset)
	if err != nil || enc == nil {
		return "", result.Charset, fmt.Errorf("charset %q: %w", result.Charset, ErrUndecodable)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", result.Charset, fmt.Errorf("decode %q: %w", result.Charset, ErrUndecodable)
	}
	return string(decoded), result.Charset, nil
}

// decodeBOM handles the unicode byte-order-mark prefixes. UTF-32 is checked
// before UTF-16 because their little-endian marks share a prefix.
func decodeBOM(data []byte) (string, string, bool) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		rest := data[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return "", "", false
		}
		return string(rest), "UTF-8", true

	case bytes.HasPrefix(data, bomUTF32BE), bytes.HasPrefix(data, bomUTF32LE):
		enc := utf32.UTF32(utf32.BigEndian, utf32.UseBOM)
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", "", false
		}
		return string(decoded), "UTF-32", true

	case bytes.HasPrefix(data, bomUTF16BE), bytes.HasPrefix(data, bomUTF16LE):
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", "", false
		}
		return string(decoded), "UTF-16", true
	}
	return "", "", false
}
