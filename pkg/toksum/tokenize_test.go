package toksum

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEncoder tokenizes on whitespace: one token per field, the token id is
// the field length. Deterministic and dependency-free.
type fakeEncoder struct{}

func (fakeEncoder) Encode(text string) []int {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	ids := make([]int, len(fields))
	for i, f := range fields {
		ids[i] = len(f)
	}
	return ids
}

func (fakeEncoder) Decode(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("<%d>", id)
	}
	return strings.Join(parts, " ")
}

func (fakeEncoder) Name() string { return "fake" }

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenizeStrEmpty(t *testing.T) {
	ids := TokenizeStr("", fakeEncoder{})
	if ids == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty token sequence, got %v", ids)
	}
}

func TestCountStrMatchesTokenizeStr(t *testing.T) {
	for _, text := range []string{"", "one", "a few more words here", "  spaced   out  "} {
		if got, want := CountStr(text, fakeEncoder{}), len(TokenizeStr(text, fakeEncoder{})); got != want {
			t.Fatalf("CountStr(%q) = %d, len(TokenizeStr) = %d", text, got, want)
		}
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "one two three")

	ids, err := TokenizeFile(path, fakeEncoder{})
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 tokens, got %v", ids)
	}

	count, err := CountFile(path, fakeEncoder{})
	if err != nil {
		t.Fatalf("CountFile: %v", err)
	}
	if count != len(ids) {
		t.Fatalf("CountFile = %d, want %d", count, len(ids))
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	_, err := TokenizeFile(filepath.Join(t.TempDir(), "missing.txt"), fakeEncoder{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestTokenizeFileOnDirectory(t *testing.T) {
	var notAFile *NotAFileError
	_, err := TokenizeFile(t.TempDir(), fakeEncoder{})
	if !errors.As(err, &notAFile) {
		t.Fatalf("expected NotAFileError, got %v", err)
	}
}

func TestTokenizeFilesPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "b.txt", "one two")
	p2 := writeFile(t, dir, "a.txt", "three four five")

	results, err := TokenizeFiles([]string{p1, p2}, fakeEncoder{})
	if err != nil {
		t.Fatalf("TokenizeFiles: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != p1 || results[1].Path != p2 {
		t.Fatalf("input order not preserved: %v", results)
	}

	want1, _ := TokenizeFile(p1, fakeEncoder{})
	want2, _ := TokenizeFile(p2, fakeEncoder{})
	if len(results[0].Tokens) != len(want1) || len(results[1].Tokens) != len(want2) {
		t.Fatalf("batch results differ from per-file results: %v", results)
	}

	total, err := CountFiles([]string{p1, p2}, fakeEncoder{})
	if err != nil {
		t.Fatalf("CountFiles: %v", err)
	}
	if total != len(want1)+len(want2) {
		t.Fatalf("CountFiles = %d, want %d", total, len(want1)+len(want2))
	}
}

func TestTokenizeFilesRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "one")

	var notAFile *NotAFileError
	_, err := TokenizeFiles([]string{path, dir}, fakeEncoder{})
	if !errors.As(err, &notAFile) {
		t.Fatalf("expected NotAFileError, got %v", err)
	}
}

func TestTokenizeFilesAbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "one two")
	missing := filepath.Join(dir, "missing.txt")

	_, err := TokenizeFiles([]string{good, missing}, fakeEncoder{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestTokenizeFilesSkipUnsupported(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "one two")
	bad := writeFile(t, dir, "bad.bin", "binary")

	restore := decodeText
	decodeText = func(data []byte) (string, string, error) {
		if string(data) == "binary" {
			return "", "x-unknown", errors.New("undecodable")
		}
		return string(data), "UTF-8", nil
	}
	defer func() { decodeText = restore }()

	// Without the option the batch fails as one unit.
	var unsupported *UnsupportedEncodingError
	if _, err := TokenizeFiles([]string{good, bad}, fakeEncoder{}); !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedEncodingError, got %v", err)
	}

	results, err := TokenizeFiles([]string{good, bad}, fakeEncoder{}, SkipUnsupported())
	if err != nil {
		t.Fatalf("TokenizeFiles with SkipUnsupported: %v", err)
	}
	if len(results) != 1 || results[0].Path != good {
		t.Fatalf("expected only the decodable file, got %v", results)
	}
}

func TestProgressCallback(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.txt", "one")
	p2 := writeFile(t, dir, "b.txt", "two three")

	var seen []string
	_, err := TokenizeFiles([]string{p1, p2}, fakeEncoder{}, WithProgress(func(path string) {
		seen = append(seen, path)
	}))
	if err != nil {
		t.Fatalf("TokenizeFiles: %v", err)
	}
	if len(seen) != 2 || seen[0] != p1 || seen[1] != p2 {
		t.Fatalf("unexpected progress sequence: %v", seen)
	}
}
