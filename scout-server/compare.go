package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// ComparePlayersArgs is the input schema for the compare_players tool.
type ComparePlayersArgs struct {
	PlayerA string `json:"player_a" jsonschema:"First player web name (required)"`
	PlayerB string `json:"player_b" jsonschema:"Second player web name (required)"`
}

// ComparePlayersResult is the output of compare_players: radar axes
// normalized 0-100 across the pair plus a summary line per player.
type ComparePlayersResult struct {
	Players [2]scout.ComparedPlayer `json:"players"`
}

func comparePlayersHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, ComparePlayersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ComparePlayersArgs) (*mcp.CallToolResult, any, error) {
		if args.PlayerA == "" || args.PlayerB == "" {
			return toolError(fmt.Errorf("player_a and player_b are required")), nil, nil
		}
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		pair, err := scout.ComparePair(table, args.PlayerA, args.PlayerB)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(ComparePlayersResult{Players: pair})
	}
}
