package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mholzen/leaftree/pkg/outline"
	"github.com/mholzen/leaftree/pkg/tree"
	"github.com/urfave/cli/v3"
)

// readTree parses the outline named by the file argument, or stdin for "-".
func readTree(cmd *cli.Command) (tree.Node, error) {
	filename := cmd.StringArg("file")

	var data []byte
	var err error
	if filename == "" || filename == "-" {
		slog.Debug("reading outline from stdin")
		data, err = io.ReadAll(stdin(cmd))
	} else {
		slog.Debug("reading outline", "file", filename)
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read outline: %w", err)
	}

	root, err := outline.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("cannot parse outline: %w", err)
	}
	return root, nil
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
