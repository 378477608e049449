package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/service"
)

// ListIdeologiesTool handles the list_ideologies MCP tool.
type ListIdeologiesTool struct {
	classifier service.ClassificationService
}

func NewListIdeologiesTool(classifier service.ClassificationService) *ListIdeologiesTool {
	return &ListIdeologiesTool{classifier: classifier}
}

// Definition returns the MCP tool definition for list_ideologies.
func (t *ListIdeologiesTool) Definition() mcp.Tool {
	codes := make([]string, len(domain.MacroCells))
	for i, c := range domain.MacroCells {
		codes[i] = string(c)
	}
	return mcp.NewTool("list_ideologies",
		mcp.WithDescription(
			"List the catalogued ideologies and supplementary axis codes of one macro-cell.",
		),
		mcp.WithString("macro_cell",
			mcp.Required(),
			mcp.Description("Macro-cell code: "+strings.Join(codes, ", ")),
		),
	)
}

// Handle processes the list_ideologies tool call.
func (t *ListIdeologiesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := strings.ToUpper(strings.TrimSpace(req.GetString("macro_cell", "")))
	if code == "" {
		return mcp.NewToolResultError("'macro_cell' is required"), nil
	}
	cell, err := t.classifier.Cell(ctx, domain.MacroCell(code))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	return jsonResult(dto.NewCellResponse(cell))
}
