package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// TeamOfWeekArgs is the input schema for the team_of_the_week tool.
type TeamOfWeekArgs struct {
	GW int `json:"gw" jsonschema:"Gameweek (required)"`
}

// TeamOfWeekResult is the output of team_of_the_week.
type TeamOfWeekResult struct {
	Gameweek    int             `json:"gameweek"`
	Lineup      []scout.TOTWRow `json:"lineup"`
	TotalPoints int             `json:"total_points"`
}

func teamOfWeekHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, TeamOfWeekArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamOfWeekArgs) (*mcp.CallToolResult, any, error) {
		if args.GW <= 0 {
			return toolError(fmt.Errorf("gw is required")), nil, nil
		}
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		live, err := svc.client.EventLive(ctx, args.GW)
		if err != nil {
			return toolError(fmt.Errorf("gameweek %d live data unavailable: %w", args.GW, err)), nil, nil
		}
		points := make(map[int]int, len(live.Elements))
		minutes := make(map[int]int, len(live.Elements))
		for _, el := range live.Elements {
			points[el.ID] = el.Stats.TotalPoints
			minutes[el.ID] = el.Stats.Minutes
		}
		lineup := scout.TeamOfWeek(table, points, minutes)
		total := 0
		for _, row := range lineup {
			total += row.GWPoints
		}
		return toolMarshal(TeamOfWeekResult{Gameweek: args.GW, Lineup: lineup, TotalPoints: total})
	}
}
