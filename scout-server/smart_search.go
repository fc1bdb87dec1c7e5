package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// SmartSearchArgs is the input schema for the smart_search tool.
type SmartSearchArgs struct {
	Query string `json:"query" jsonschema:"Free-text scout query, e.g. 'best MID under 6.0'"`
	Limit int    `json:"limit" jsonschema:"Max rows to return (0 = all)"`
}

// SmartSearchResult is the output of smart_search. Message is the rendered
// confirmation line for the applied filters, empty when nothing matched.
type SmartSearchResult struct {
	Query          string         `json:"query"`
	AppliedFilters []string       `json:"applied_filters"`
	Message        string         `json:"message"`
	Count          int            `json:"count"`
	Players        []scout.Player `json:"players"`
}

func smartSearchHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, SmartSearchArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SmartSearchArgs) (*mcp.CallToolResult, any, error) {
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		rows, applied := scout.SmartSearch(args.Query, table)
		if args.Limit > 0 && args.Limit < len(rows) {
			rows = rows[:args.Limit]
		}
		message := ""
		if joined := scout.FormatFilterList(applied); joined != "" {
			message = "Showing " + joined
		}
		return toolMarshal(SmartSearchResult{
			Query:          args.Query,
			AppliedFilters: applied,
			Message:        message,
			Count:          len(rows),
			Players:        rows,
		})
	}
}
