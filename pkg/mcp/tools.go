package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/leaftree/pkg/outline"
	"github.com/mholzen/leaftree/pkg/stats"
	"github.com/mholzen/leaftree/pkg/tree"
)

const (
	ToolSmallest = "leaftree_smallest"
	ToolStats    = "leaftree_stats"
	ToolRender   = "leaftree_render"
)

const outlineDescription = `Tree as an indented bullet outline: "- *" opens a group, "- <n>" is a leaf with a non-negative integer, children are indented by two spaces`

// BuildTools constructs the requested tools in the order provided.
func BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolSmallest: buildSmallestTool,
		ToolStats:    buildStatsTool,
		ToolRender:   buildRenderTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

func withOutline(name, description string) mcptypes.Tool {
	return mcptypes.NewTool(
		name,
		mcptypes.WithDescription(description),
		mcptypes.WithString("outline",
			mcptypes.Required(),
			mcptypes.Description(outlineDescription),
		),
	)
}

// parseOutline returns either the parsed tree or a tool error result.
func parseOutline(req mcptypes.CallToolRequest) (tree.Node, *mcptypes.CallToolResult) {
	text, err := req.RequireString("outline")
	if err != nil {
		return nil, mcptypes.NewToolResultError(err.Error())
	}
	root, err := outline.Parse(text)
	if err != nil {
		slog.Debug("rejecting outline", "tool", req.Params.Name, "error", err)
		return nil, mcptypes.NewToolResultErrorFromErr("cannot parse outline", err)
	}
	return root, nil
}

func buildSmallestTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: withOutline(ToolSmallest, "Return the smallest leaf value in the tree, or -1 if the tree has no leaves"),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, errResult := parseOutline(req)
			if errResult != nil {
				return errResult, nil
			}
			return mcptypes.NewToolResultJSON(map[string]int{"smallest": tree.SmallestLeaf(root)})
		},
	}
}

func buildStatsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: withOutline(ToolStats, "Count leaves and groups, and report depth, smallest and largest leaf"),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, errResult := parseOutline(req)
			if errResult != nil {
				return errResult, nil
			}
			return mcptypes.NewToolResultJSON(stats.Count(root))
		},
	}
}

func buildRenderTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: withOutline(ToolRender, "Draw the tree as a diagram"),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, errResult := parseOutline(req)
			if errResult != nil {
				return errResult, nil
			}
			return mcptypes.NewToolResultText(outline.Diagram(root)), nil
		},
	}
}
