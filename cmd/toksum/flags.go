package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/toksum/internal/logger"
)

var (
	modelName    string
	encodingName string
	noRecursive  bool
	jsonOut      bool
	quiet        bool
	logLevel     string
	logFormat    string
	debug        bool
)

func encodingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "model whose encoding to use (e.g. gpt-4o)",
			Destination: &modelName,
		},
		&cli.StringFlag{
			Name:        "encoding",
			Aliases:     []string{"e"},
			Usage:       "encoding name to use (e.g. cl100k_base)",
			Destination: &encodingName,
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "emit results as JSON",
			Destination: &jsonOut,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "suppress the progress bar",
			Destination: &quiet,
		},
	}
}

func recursiveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-recursive",
			Aliases:     []string{"nr"},
			Usage:       "do not descend into subdirectories",
			Destination: &noRecursive,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func buildLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = logger.ParseLevel("debug")
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Default()
	default:
		return logger.Pretty(os.Stderr, level)
	}
}
