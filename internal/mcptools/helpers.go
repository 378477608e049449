// Package mcptools exposes the stateless classifier and the ideology catalogue
// as MCP tools.
//
// Each tool is a struct with its dependencies injected via constructor.
// Definition returns the mcp.Tool schema and Handle processes a call.
package mcptools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"compass-quiz/internal/service"
)

// Register adds every tool to s.
func Register(s *server.MCPServer, classifier service.ClassificationService) {
	classify := NewClassifyTool(classifier)
	s.AddTool(classify.Definition(), classify.Handle)

	list := NewListIdeologiesTool(classifier)
	s.AddTool(list.Definition(), list.Handle)
}

// floatArg extracts a number argument, reporting whether it was present.
// JSON numbers arrive as float64.
func floatArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// scoreMapArg accepts either a JSON object or a string holding one.
func scoreMapArg(req mcp.CallToolRequest, key string) (map[string]float64, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case map[string]interface{}:
		return numericMap(key, v)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, fmt.Errorf("'%s' must be a JSON object of numbers: %w", key, err)
		}
		return numericMap(key, decoded)
	default:
		return nil, fmt.Errorf("'%s' must be an object", key)
	}
}

// numericMap rejects null and non-number values.
func numericMap(key string, in map[string]interface{}) (map[string]float64, error) {
	out := make(map[string]float64, len(in))
	for code, val := range in {
		f, ok := val.(float64)
		if !ok {
			return nil, fmt.Errorf("'%s.%s' must be a number", key, code)
		}
		out[code] = f
	}
	return out, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
