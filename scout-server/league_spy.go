package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// LeagueStandingsArgs is the input schema for the league_standings tool.
type LeagueStandingsArgs struct {
	LeagueID int `json:"league_id" jsonschema:"Classic league id (required)"`
}

func leagueStandingsHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, LeagueStandingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueStandingsArgs) (*mcp.CallToolResult, any, error) {
		if args.LeagueID == 0 {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		standings, err := svc.client.LeagueStandings(ctx, args.LeagueID)
		if err != nil {
			return toolError(fmt.Errorf("league %d standings unavailable: %w", args.LeagueID, err)), nil, nil
		}
		return toolMarshal(scout.BuildLeagueReport(standings))
	}
}
