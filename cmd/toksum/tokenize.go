package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/toksum/pkg/toksum"
)

// resolveEncoder applies config file defaults and collapses the -m/-e flags
// to a usable encoder.
func resolveEncoder(c *cli.Command) (toksum.Encoder, error) {
	applyConfig(c, loadConfig())
	enc, err := toksum.ResolveEncoder(toksum.Selector{Model: modelName, Encoding: encodingName})
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return enc, nil
}

// textArg returns the positional text argument, falling back to stdin so
// text can be piped in.
func textArg(c *cli.Command) (string, error) {
	if c.Args().Len() > 0 {
		return c.Args().First(), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", cli.Exit(fmt.Sprintf("error: read stdin: %v", err), 1)
	}
	return string(data), nil
}

func pathArg(c *cli.Command, kind string) (string, error) {
	if c.Args().Len() == 0 {
		return "", cli.Exit(fmt.Sprintf("error: %s argument required", kind), 1)
	}
	return c.Args().First(), nil
}

func pathArgs(c *cli.Command) ([]string, error) {
	if c.Args().Len() == 0 {
		return nil, cli.Exit("error: at least one file argument required", 1)
	}
	return c.Args().Slice(), nil
}

func tokenizeStrCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokenize-str",
		Usage:     "Tokenize a string into token ids",
		ArgsUsage: "[text]",
		Flags:     append(encodingFlags(), outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			enc, err := resolveEncoder(c)
			if err != nil {
				return err
			}
			text, err := textArg(c)
			if err != nil {
				return err
			}
			return printTokens(toksum.TokenizeStr(text, enc))
		},
	}
}

func tokenizeFileCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokenize-file",
		Usage:     "Tokenize the contents of a file",
		ArgsUsage: "<path>",
		Flags:     append(encodingFlags(), outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			enc, err := resolveEncoder(c)
			if err != nil {
				return err
			}
			path, err := pathArg(c, "file")
			if err != nil {
				return err
			}
			ids, err := toksum.TokenizeFile(path, enc)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printTokens(ids)
		},
	}
}

func tokenizeFilesCmd() *cli.Command {
	var skipUnsupported bool

	return &cli.Command{
		Name:      "tokenize-files",
		Usage:     "Tokenize multiple files, in argument order",
		ArgsUsage: "<path> [path...]",
		Flags: append(append(encodingFlags(), outputFlags()...),
			&cli.BoolFlag{
				Name:        "skip-unsupported",
				Usage:       "skip files whose byte encoding cannot be decoded",
				Destination: &skipUnsupported,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			enc, err := resolveEncoder(c)
			if err != nil {
				return err
			}
			paths, err := pathArgs(c)
			if err != nil {
				return err
			}

			opts, finish := batchOptions(len(paths), "Tokenizing files", skipUnsupported)
			results, err := toksum.TokenizeFiles(paths, enc, opts...)
			finish()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printFileTokens(results)
		},
	}
}

func tokenizeDirCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokenize-dir",
		Usage:     "Tokenize all files in a directory tree",
		ArgsUsage: "<dir>",
		Flags:     append(append(encodingFlags(), outputFlags()...), recursiveFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			enc, err := resolveEncoder(c)
			if err != nil {
				return err
			}
			dir, err := pathArg(c, "directory")
			if err != nil {
				return err
			}

			opts, finish, err := dirOptions(dir, "Tokenizing directory")
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			node, err := toksum.TokenizeDir(dir, enc, !noRecursive, opts...)
			finish()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printTree(node)
		},
	}
}

// batchOptions assembles traversal options for a fixed-size file batch.
func batchOptions(total int, description string, skipUnsupported bool) ([]toksum.Option, func()) {
	progress, finish := newProgress(total, description)
	opts := []toksum.Option{progress}
	if skipUnsupported {
		opts = append(opts, toksum.SkipUnsupported())
	}
	return opts, finish
}

// dirOptions counts the files under dir first so the progress bar has a
// total, mirroring how batches are sized.
func dirOptions(dir, description string) ([]toksum.Option, func(), error) {
	total, err := toksum.CountDirFiles(dir, !noRecursive)
	if err != nil {
		return nil, nil, err
	}
	progress, finish := newProgress(total, description)
	return []toksum.Option{progress}, finish, nil
}
