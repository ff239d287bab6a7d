// Package mcpserver exposes reshape's execute/validate contract as MCP
// tools over stdio, grounded on erraggy-oastools/internal/mcpserver's
// mcp.NewServer/mcp.AddTool pattern.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/graftlang/reshape/internal/cliconfig"
	_ "github.com/graftlang/reshape/pkg/reshape/ops" // register operators
)

const serverInstructions = `reshape MCP server — applies a declarative pipeline of tree-reshaping operations to a JSON document.

Tools:
- execute: run a pipeline config against an input document, return the reshaped result.
- validate: check a pipeline config's shape without running it.

Configuration: RESHAPE_COLOR, RESHAPE_DEBUG, RESHAPE_TRACE env vars. The Go MCP SDK has no initializationOptions support; use env vars instead.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects. Unlike the teacher's Run(ctx), reshape has no background
// sweeper or cache needing an outer cancellation scope, so this
// constructs its own context rather than taking one from the caller.
func Run() error {
	_ = cliconfig.Load()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "reshape", Version: "(development)"},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(context.Background(), &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute",
		Description: "Apply a reshape pipeline config to an input JSON document and return the reshaped output. The config selects a root, runs an ordered list of tree operations (drop, rename, set, copy, move, transform, dates, list/map conversions, ...), then resolves an output template.",
	}, handleExecute)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a reshape pipeline config's structure: every step names a known operator and carries its required parameters. Does not run the pipeline or touch any input document.",
	}, handleValidate)
}

// errResult builds an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
