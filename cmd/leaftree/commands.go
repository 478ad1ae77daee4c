package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholzen/leaftree/pkg/mcp"
	"github.com/mholzen/leaftree/pkg/outline"
	"github.com/mholzen/leaftree/pkg/stats"
	"github.com/mholzen/leaftree/pkg/tree"
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getSmallestCommand(),
		getStatsCommand(),
		getShowCommand(),
		getMcpCommand(),
		getServeCommand(),
		getVersionCommand(),
	}
}

func getSmallestCommand() *cli.Command {
	return &cli.Command{
		Name:      "smallest",
		Usage:     "Print the smallest leaf value, or -1 if there are no leaves",
		UsageText: "leaftree smallest [<file>] [options]",
		Arguments: getInputArguments(),
		Flags:     []cli.Flag{getFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			root, err := readTree(cmd)
			if err != nil {
				return err
			}

			smallest := tree.SmallestLeaf(root)
			slog.Info("computed smallest leaf", "smallest", smallest)

			if format == "json" {
				return printJSONToWriter(stdout(cmd), map[string]int{"smallest": smallest})
			}
			_, err = fmt.Fprintln(stdout(cmd), smallest)
			return err
		},
	}
}

func getStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Count leaves and groups and report depth, smallest and largest leaf",
		UsageText: "leaftree stats [<file>] [options]",
		Arguments: getInputArguments(),
		Flags:     []cli.Flag{getFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			root, err := readTree(cmd)
			if err != nil {
				return err
			}

			summary := stats.Count(root)
			if format == "json" {
				return printJSONToWriter(stdout(cmd), summary)
			}
			_, err = fmt.Fprintln(stdout(cmd), summary)
			return err
		},
	}
}

func getShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Draw the tree",
		UsageText: "leaftree show [<file>] [options]",
		Arguments: getInputArguments(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "outline",
				Usage: "Print the normalized outline instead of a diagram",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := readTree(cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("outline") {
				_, err = fmt.Fprint(stdout(cmd), outline.Render(root))
				return err
			}
			_, err = fmt.Fprint(stdout(cmd), outline.Diagram(root))
			return err
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "leaftree mcp [options]",
		Description: `Start the leaftree MCP server. Every tool takes an "outline" argument.

Tools:
  smallest  Smallest leaf value, or -1
  stats     Leaf and group counts, depth, smallest and largest leaf
  render    Tree diagram

Examples:
  leaftree mcp                      # All tools
  leaftree mcp --expose=smallest    # Specific tools only`,
		Flags: []cli.Flag{getExposeFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunServer(ctx, mcp.Config{
				Expose:  cmd.String("expose"),
				Version: version,
			})
		},
	}
}

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run as MCP server (streamable HTTP transport)",
		UsageText: "leaftree serve [options]",
		Flags: []cli.Flag{
			getExposeFlag(),
			&cli.StringFlag{
				Name:  "addr",
				Value: "localhost:8080",
				Usage: "Address to listen on",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Value: "/mcp",
				Usage: "Path of the MCP endpoint",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunHTTPServer(ctx, mcp.HTTPConfig{
				Config: mcp.Config{
					Expose:  cmd.String("expose"),
					Version: version,
				},
				Addr:         cmd.String("addr"),
				EndpointPath: cmd.String("endpoint"),
			})
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "leaftree version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			fmt.Fprintf(w, "leaftree version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}
