package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/service"
)

// ClassifyTool handles the classify_position MCP tool.
type ClassifyTool struct {
	classifier service.ClassificationService
}

func NewClassifyTool(classifier service.ClassificationService) *ClassifyTool {
	return &ClassifyTool{classifier: classifier}
}

// Definition returns the MCP tool definition for classify_position.
func (t *ClassifyTool) Definition() mcp.Tool {
	return mcp.NewTool("classify_position",
		mcp.WithDescription(
			"Classify a political position given as axis scores in [-100, 100]. "+
				"Returns the macro-cell and the nearest catalogued ideology.",
		),
		mcp.WithNumber("economic",
			mcp.Required(),
			mcp.Description("Economic score, -100 (left) to 100 (right)"),
		),
		mcp.WithNumber("authority",
			mcp.Required(),
			mcp.Description("Authority score, -100 (libertarian) to 100 (authoritarian)"),
		),
		mcp.WithNumber("cultural",
			mcp.Description("Cultural score, -100 (progressive) to 100 (traditional). Default 0"),
		),
		mcp.WithObject("supplementary",
			mcp.Description("Optional supplementary axis scores of the position's macro-cell, e.g. {\"EMGM-A\": 20}. "+
				"When omitted only the primary axes are compared."),
		),
	)
}

// Handle processes the classify_position tool call.
func (t *ClassifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	economic, ok := floatArg(req, "economic")
	if !ok {
		return mcp.NewToolResultError("'economic' is required and must be a number"), nil
	}
	authority, ok := floatArg(req, "authority")
	if !ok {
		return mcp.NewToolResultError("'authority' is required and must be a number"), nil
	}
	cultural, _ := floatArg(req, "cultural")

	supp, err := scoreMapArg(req, "supplementary")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var scores domain.SupplementaryScores
	if len(supp) > 0 {
		scores = domain.SupplementaryScores(supp)
	}
	result, err := t.classifier.Classify(ctx, domain.PrimaryScores{
		Economic:  economic,
		Authority: authority,
		Cultural:  cultural,
	}, scores)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}
	return jsonResult(dto.NewResultResponse(result))
}
