package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "toksum",
		Usage: "Count and tokenize text with tiktoken encodings",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			tokenizeStrCmd(),
			tokenizeFileCmd(),
			tokenizeFilesCmd(),
			tokenizeDirCmd(),
			countStrCmd(),
			countFileCmd(),
			countFilesCmd(),
			countDirCmd(),
			modelsCmd(),
			encodingsCmd(),
			serveCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
