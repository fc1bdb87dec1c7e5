package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// scoutService wires the upstream client to the pipeline. Each tool call
// rebuilds the derived table for its own query cycle; the table is never
// mutated after loadTable returns.
type scoutService struct {
	client *fplapi.Client
	logger *slog.Logger
}

// loadTable runs the derivation pipeline for one query cycle. A bootstrap
// failure is fatal to the cycle; a fixtures failure degrades the fixture
// columns to their neutral defaults and continues.
func (s *scoutService) loadTable(ctx context.Context) ([]scout.Player, error) {
	bootstrap, err := s.client.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load data: %w", err)
	}
	table := scout.BuildTable(bootstrap.Elements, bootstrap.Teams)

	fixtures, err := s.client.Fixtures(ctx)
	if err != nil {
		s.logger.Warn("fixtures unavailable, using neutral fixture outlook", "error", err)
		return table, nil
	}
	scout.ApplyFixtureOutlook(table, bootstrap.Teams, fixtures)
	return table, nil
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// toolMarshal renders a tool result as indented JSON text content.
func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(b []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
