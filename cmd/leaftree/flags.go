package main

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

func getLogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level: debug, info, warn, error",
			Sources: cli.EnvVars("LEAFTREE_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append logs to this file instead of stderr",
		},
	}
}

func getFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "Output format: text or json",
	}
}

func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("format must be 'text' or 'json'")
	}
	return nil
}

func getInputArguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "file",
			Value:     "-",
			UsageText: "<file> (default: stdin)",
		},
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: "all",
		Usage: "Tools to expose: all, or comma-separated tool names (smallest, stats, render)",
	}
}
