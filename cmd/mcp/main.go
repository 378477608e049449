// Command mcp serves the classifier and the ideology catalogue as MCP tools
// over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"compass-quiz/internal/catalog"
	"compass-quiz/internal/mcptools"
	"compass-quiz/internal/service"
)

const version = "1.0.0"

func main() {
	s := server.NewMCPServer(
		"compass-quiz",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	mcptools.Register(s, service.NewClassificationService(catalog.Default()))

	// stdout carries the protocol; diagnostics go to stderr.
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
