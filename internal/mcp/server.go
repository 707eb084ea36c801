// Package mcp exposes an address book to MCP clients over stdio.
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nikbrunner/bizbook/internal/logger"
	"github.com/nikbrunner/bizbook/internal/logic"
)

// Tool names.
const (
	ToolExecute  = "bizbook_execute"
	ToolContacts = "bizbook_contacts"
	ToolFolders  = "bizbook_folders"
)

// Handlers serves tool calls against one Manager. The Manager is not safe
// for concurrent use, so every call holds mu.
type Handlers struct {
	mu      sync.Mutex
	manager *logic.Manager
	log     *logger.Logger
}

// NewHandlers creates Handlers over manager.
func NewHandlers(manager *logic.Manager, log *logger.Logger) *Handlers {
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{manager: manager, log: log.WithComponent("mcp")}
}

// NewServer creates an MCP server with the bizbook tools registered.
func NewServer(manager *logic.Manager, log *logger.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"bizbook",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	h := NewHandlers(manager, log)
	s.AddTool(executeToolDef, h.HandleExecute)
	s.AddTool(contactsToolDef, h.HandleContacts)
	s.AddTool(foldersToolDef, h.HandleFolders)

	return s
}

// Run starts the MCP server using stdio transport.
func Run(manager *logic.Manager, log *logger.Logger, version string) error {
	return server.ServeStdio(NewServer(manager, log, version))
}
