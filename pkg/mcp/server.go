package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"chromactl/pkg/profile"
	"chromactl/pkg/registry"
)

// Server wraps the MCP server with lighting control functionality
type Server struct {
	mcpServer *server.MCPServer
	registry  *registry.Registry
	profiles  *profile.Store
}

// NewServer creates a new MCP server for lighting control
func NewServer(reg *registry.Registry, profiles *profile.Store) *Server {
	s := &Server{
		registry: reg,
		profiles: profiles,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"chromactl",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
