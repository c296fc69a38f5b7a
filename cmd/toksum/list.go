package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/toksum/pkg/toksum"
)

func modelsCmd() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List supported models and their encodings",
		Flags: outputFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if jsonOut {
				return printJSON(toksum.ModelMappings())
			}
			mappings := toksum.ModelMappings()
			for _, model := range toksum.ValidModels() {
				fmt.Printf("%-28s %s\n", model, mappings[model])
			}
			return nil
		},
	}
}

func encodingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "encodings",
		Usage: "List supported encoding names",
		Flags: outputFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if jsonOut {
				return printJSON(toksum.ValidEncodings())
			}
			for _, encoding := range toksum.ValidEncodings() {
				fmt.Println(encoding)
			}
			return nil
		},
	}
}
