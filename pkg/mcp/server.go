package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	Expose  string
	Version string
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := newServer(cfg)
	if err != nil {
		return err
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

func newServer(cfg Config) (*mcpserver.MCPServer, error) {
	toolsToEnable, err := ParseExposeList(cfg.Expose)
	if err != nil {
		return nil, err
	}

	serverTools, err := BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any) {
		msgJSON, _ := json.Marshal(message)
		slog.Debug("mcp request", "id", id, "method", method, "message", string(msgJSON))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any, err error) {
		slog.Debug("mcp error", "id", id, "method", method, "error", err)
	})

	server := mcpserver.NewMCPServer(
		"leaftree",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
		mcpserver.WithHooks(hooks),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}
	slog.Debug("mcp server ready", "tools", strings.Join(toolsToEnable, ","))
	return server, nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// Tools can be referenced by short name ("smallest") or full MCP name
// ("leaftree_smallest"); "all" enables every tool.
func ParseExposeList(raw string) ([]string, error) {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"all"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if token == "all" {
			addSet(allTools)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := aliasMapFull[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolSmallest,
		ToolStats,
		ToolRender,
	}

	aliasMap = map[string]string{
		"smallest": ToolSmallest,
		"stats":    ToolStats,
		"render":   ToolRender,
	}

	aliasMapFull = func() map[string]string {
		out := make(map[string]string, len(allTools))
		for _, fullName := range allTools {
			out[fullName] = fullName
		}
		return out
	}()
)
