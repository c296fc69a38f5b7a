package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/toksum/pkg/toksum"
)

func countStrCmd() *cli.Command {
	return &cli.Command{
		Name:      "count-str",
		Usage:     "Count the tokens in a string",
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
			return printCount(toksum.CountStr(text, enc))
		},
	}
}

func countFileCmd() *cli.Command {
	return &cli.Command{
		Name:      "count-file",
		Usage:     "Count the tokens in a file",
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
			count, err := toksum.CountFile(path, enc)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printCount(count)
		},
	}
}

func countFilesCmd() *cli.Command {
	var skipUnsupported bool

	return &cli.Command{
		Name:      "count-files",
		Usage:     "Count the total tokens across multiple files",
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

			opts, finish := batchOptions(len(paths), "Counting tokens", skipUnsupported)
			total, err := toksum.CountFiles(paths, enc, opts...)
			finish()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printCount(total)
		},
	}
}

func countDirCmd() *cli.Command {
	return &cli.Command{
		Name:      "count-dir",
		Usage:     "Count the total tokens in a directory tree",
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

			opts, finish, err := dirOptions(dir, "Counting tokens")
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			total, err := toksum.CountDir(dir, enc, !noRecursive, opts...)
			finish()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printCount(total)
		},
	}
}
