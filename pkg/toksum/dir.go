package toksum

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirNode is the tokenization result for one directory. Entries keeps the
// traversal order: files sorted by name, then subdirectories sorted by name.
type DirNode struct {
	Name    string     `json:"name"`
	Entries []DirEntry `json:"entries"`
}

// DirEntry is one entry of a DirNode: a file leaf carrying token ids, or a
// subdirectory branch. Exactly one of Tokens and Dir is set.
type DirEntry struct {
	Name   string   `json:"name"`
	Tokens []int    `json:"tokens,omitempty"`
	Dir    *DirNode `json:"dir,omitempty"`
}

// CountTokens sums the token counts of every file leaf under the node.
func (n *DirNode) CountTokens() int {
	if n == nil {
		return 0
	}
	total := 0
	for _, e := range n.Entries {
		if e.Dir != nil {
			total += e.Dir.CountTokens()
		} else {
			total += len(e.Tokens)
		}
	}
	return total
}

// TokenizeDir tokenizes the files inside dir into a tree mirroring the
// filesystem. With recursive set, subdirectories become child nodes;
// otherwise they are ignored.
//
// Entries are visited in lexicographic name order, files before
// subdirectories, so output is deterministic on every filesystem. Files whose
// byte encoding cannot be decoded are skipped, and subdirectories that end up
// empty are omitted. Symbolic links are followed; cyclic link trees are not
// guarded against.
func TokenizeDir(dir string, enc Encoder, recursive bool, opts ...Option) (*DirNode, error) {
	o := applyOptions(opts)
	return tokenizeDir(dir, enc, recursive, o)
}

func tokenizeDir(dir string, enc Encoder, recursive bool, o options) (*DirNode, error) {
	files, subdirs, err := readDirSplit(dir)
	if err != nil {
		return nil, err
	}

	node := &DirNode{Name: filepath.Base(dir)}

	for _, name := range files {
		path := filepath.Join(dir, name)
		ids, err := TokenizeFile(path, enc)
		if err != nil {
			var unsupported *UnsupportedEncodingError
			if errors.As(err, &unsupported) {
				o.advance(path)
				continue
			}
			return nil, err
		}
		node.Entries = append(node.Entries, DirEntry{Name: name, Tokens: ids})
		o.advance(path)
	}

	if recursive {
		for _, name := range subdirs {
			child, err := tokenizeDir(filepath.Join(dir, name), enc, recursive, o)
			if err != nil {
				return nil, err
			}
			if len(child.Entries) == 0 {
				continue
			}
			node.Entries = append(node.Entries, DirEntry{Name: name, Dir: child})
		}
	}

	return node, nil
}

// CountDir returns the total number of tokens across all files in dir. The
// total always equals TokenizeDir(...).CountTokens() for the same arguments.
func CountDir(dir string, enc Encoder, recursive bool, opts ...Option) (int, error) {
	node, err := TokenizeDir(dir, enc, recursive, opts...)
	if err != nil {
		return 0, err
	}
	return node.CountTokens(), nil
}

// CountDirFiles returns the number of files under dir, honoring recursive.
// Callers use it to size progress reporting before a traversal.
func CountDirFiles(dir string, recursive bool) (int, error) {
	files, subdirs, err := readDirSplit(dir)
	if err != nil {
		return 0, err
	}
	total := len(files)
	if recursive {
		for _, name := range subdirs {
			n, err := CountDirFiles(filepath.Join(dir, name), recursive)
			if err != nil {
				return 0, err
			}
			total += n
		}
	}
	return total, nil
}

// readDirSplit lists dir once and separates file names from subdirectory
// names, both in lexicographic order. Symbolic links are classified by their
// target.
func readDirSplit(dir string) (files, subdirs []string, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil, &NotADirectoryError{Path: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		target, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Broken symlink or the entry vanished mid-walk.
			continue
		}
		if target.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}
	return files, subdirs, nil
}
