package toksum

import (
	"errors"
	"fmt"
	"os"

	"github.com/samcharles93/toksum/internal/textdecode"
)

// decodeText is a small seam for tests.
var decodeText = textdecode.Decode

// TokenizeStr converts text to token ids using enc. The empty string yields
// an empty (non-nil) slice.
func TokenizeStr(text string, enc Encoder) []int {
	ids := enc.Encode(text)
	if ids == nil {
		ids = []int{}
	}
	return ids
}

// CountStr returns the number of tokens in text. It is defined as
// len(TokenizeStr(text, enc)).
func CountStr(text string, enc Encoder) int {
	return len(TokenizeStr(text, enc))
}

// TokenizeFile reads the file at path, decodes its bytes to text (detecting
// the character encoding when it is not UTF-8), and tokenizes the result.
//
// A missing path fails with an fs.ErrNotExist error, a directory with
// NotAFileError, and undecodable contents with UnsupportedEncodingError.
func TokenizeFile(path string, enc Encoder) ([]int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &NotAFileError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, charset, err := decodeText(data)
	if err != nil {
		return nil, &UnsupportedEncodingError{Path: path, Charset: charset, Err: err}
	}
	return TokenizeStr(text, enc), nil
}

// CountFile returns the number of tokens in the file at path.
func CountFile(path string, enc Encoder) (int, error) {
	ids, err := TokenizeFile(path, enc)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// FileTokens pairs a file path with its token ids.
type FileTokens struct {
	Path   string `json:"path"`
	Tokens []int  `json:"tokens"`
}

// TokenizeFiles tokenizes each path in order. Every path must name a regular
// file. The first failure aborts the whole batch unless SkipUnsupported is
// set, in which case files with undecodable contents are left out of the
// result.
func TokenizeFiles(paths []string, enc Encoder, opts ...Option) ([]FileTokens, error) {
	o := applyOptions(opts)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, &NotAFileError{Path: path}
		}
	}

	results := make([]FileTokens, 0, len(paths))
	for _, path := range paths {
		ids, err := TokenizeFile(path, enc)
		if err != nil {
			var unsupported *UnsupportedEncodingError
			if o.skipUnsupported && errors.As(err, &unsupported) {
				o.advance(path)
				continue
			}
			return nil, err
		}
		results = append(results, FileTokens{Path: path, Tokens: ids})
		o.advance(path)
	}
	return results, nil
}

// CountFiles returns the total number of tokens across paths, with the same
// ordering and failure semantics as TokenizeFiles.
func CountFiles(paths []string, enc Encoder, opts ...Option) (int, error) {
	results, err := TokenizeFiles(paths, enc, opts...)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range results {
		total += len(r.Tokens)
	}
	return total, nil
}
