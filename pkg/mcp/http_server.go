package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// HTTPConfig extends Config with HTTP-specific settings.
type HTTPConfig struct {
	Config

	// Addr is the address to listen on (e.g., ":8080" or "localhost:8080").
	Addr string

	// EndpointPath is the path for the MCP endpoint (default: "/mcp").
	EndpointPath string
}

// RunHTTPServer starts the MCP server over streamable HTTP transport and
// shuts it down when ctx is cancelled.
func RunHTTPServer(ctx context.Context, cfg HTTPConfig) error {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", cfg.Addr, err)
	}
	return serveHTTP(ctx, listener, cfg)
}

// serveHTTP serves on listener until ctx is cancelled or serving fails, and
// returns only after the shutdown goroutine has finished.
func serveHTTP(ctx context.Context, listener net.Listener, cfg HTTPConfig) error {
	handler, endpointPath, err := newHTTPHandler(cfg)
	if err != nil {
		listener.Close()
		return err
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // No timeout for SSE streaming
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("starting MCP HTTP server", "addr", listener.Addr().String(), "endpoint", endpointPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		slog.Info("shutting down MCP HTTP server")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	serveErr := server.Serve(listener)
	cancel()
	<-done

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", serveErr)
	}
	return nil
}

func newHTTPHandler(cfg HTTPConfig) (http.Handler, string, error) {
	mcpServer, err := newServer(cfg.Config)
	if err != nil {
		return nil, "", err
	}

	endpointPath := cfg.EndpointPath
	if endpointPath == "" {
		endpointPath = "/mcp"
	}

	mux := http.NewServeMux()
	mux.Handle(endpointPath, mcpserver.NewStreamableHTTPServer(
		mcpServer,
		mcpserver.WithEndpointPath(endpointPath),
	))
	return mux, endpointPath, nil
}
