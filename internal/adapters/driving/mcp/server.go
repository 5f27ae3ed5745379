package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

// Implementation identity announced to MCP hosts.
const (
	Name    = "dhbw-academic-assistant"
	Version = "4.3.0"
)

// Server is the MCP server for the academic assistant.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
// Resources are enumerated once here; the dataset never changes afterwards.
func NewServer(ctx context.Context, ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    Name,
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	if err := s.registerResources(ctx); err != nil {
		return nil, fmt.Errorf("registering resources: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or the host disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Infow("mcp server listening", logger.FieldAddress, "stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler serving this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP starts the MCP server over streamable HTTP on addr.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Infow("mcp server listening", logger.FieldAddress, addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
