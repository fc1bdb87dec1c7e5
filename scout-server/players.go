package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// FilteredPlayersArgs is the input schema for the get_filtered_players tool.
type FilteredPlayersArgs struct {
	MinMinutes int      `json:"min_minutes" jsonschema:"Minimum minutes played (0 = no filter)"`
	MaxCost    *float64 `json:"max_cost,omitempty" jsonschema:"Maximum price in millions"`
	MinCost    *float64 `json:"min_cost,omitempty" jsonschema:"Minimum price in millions"`
	Positions  []string `json:"positions,omitempty" jsonschema:"Positions to include (GKP/DEF/MID/FWD, empty = all)"`
	Limit      int      `json:"limit" jsonschema:"Max rows to return (0 = all)"`
}

// FilteredPlayersResult is the output of get_filtered_players.
type FilteredPlayersResult struct {
	Count   int            `json:"count"`
	Players []scout.Player `json:"players"`
}

func filteredPlayersHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, FilteredPlayersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args FilteredPlayersArgs) (*mcp.CallToolResult, any, error) {
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		rows := scout.Filter(table, scout.FilterOptions{
			Positions:  args.Positions,
			MinMinutes: args.MinMinutes,
			MaxCost:    args.MaxCost,
			MinCost:    args.MinCost,
		})
		if args.Limit > 0 && args.Limit < len(rows) {
			rows = rows[:args.Limit]
		}
		return toolMarshal(FilteredPlayersResult{Count: len(rows), Players: rows})
	}
}

// TopPlayersArgs is the input schema for the top_players tool.
type TopPlayersArgs struct {
	Metric     string   `json:"metric" jsonschema:"Metric to rank by (default ppm)"`
	N          int      `json:"n" jsonschema:"How many rows (default 15)"`
	Positions  []string `json:"positions,omitempty" jsonschema:"Positions to include (empty = all)"`
	MinMinutes int      `json:"min_minutes" jsonschema:"Minimum minutes played (0 = no filter)"`
	MaxCost    *float64 `json:"max_cost,omitempty" jsonschema:"Maximum price in millions"`
}

// TopPlayersResult is the output of top_players.
type TopPlayersResult struct {
	Metric  string         `json:"metric"`
	Players []scout.Player `json:"players"`
}

func topPlayersHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, TopPlayersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TopPlayersArgs) (*mcp.CallToolResult, any, error) {
		metric := args.Metric
		if metric == "" {
			metric = "ppm"
		}
		n := args.N
		if n <= 0 {
			n = 15
		}
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		pool := scout.Filter(table, scout.FilterOptions{
			Positions:  args.Positions,
			MinMinutes: args.MinMinutes,
			MaxCost:    args.MaxCost,
		})
		rows, err := scout.TopN(pool, metric, n)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(TopPlayersResult{Metric: metric, Players: rows})
	}
}
