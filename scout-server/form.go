package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

const maxFormPlayers = 5

// PlayerFormArgs is the input schema for the player_form tool.
type PlayerFormArgs struct {
	Players    []string `json:"players" jsonschema:"Up to five player web names (required)"`
	Cumulative bool     `json:"cumulative" jsonschema:"Report running season totals instead of per-gameweek points"`
}

// PlayerFormSeries is one player's form series.
type PlayerFormSeries struct {
	Name   string            `json:"name"`
	Series []scout.FormPoint `json:"series"`
}

// PlayerFormResult is the output of player_form. A fetch failure for one
// player is reported as a warning and does not fail the call.
type PlayerFormResult struct {
	Cumulative bool               `json:"cumulative"`
	Players    []PlayerFormSeries `json:"players"`
	Warnings   []string           `json:"warnings,omitempty"`
}

func playerFormHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, PlayerFormArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerFormArgs) (*mcp.CallToolResult, any, error) {
		if len(args.Players) == 0 {
			return toolError(fmt.Errorf("players is required")), nil, nil
		}
		if len(args.Players) > maxFormPlayers {
			return toolError(fmt.Errorf("at most %d players per call, got %d", maxFormPlayers, len(args.Players))), nil, nil
		}
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}

		out := PlayerFormResult{Cumulative: args.Cumulative}
		for _, name := range args.Players {
			p, err := scout.FindByName(table, name)
			if err != nil {
				out.Warnings = append(out.Warnings, err.Error())
				continue
			}
			summary, err := svc.client.ElementSummary(ctx, p.ID)
			if err != nil {
				out.Warnings = append(out.Warnings, fmt.Sprintf("history for %s unavailable: %v", p.WebName, err))
				continue
			}
			out.Players = append(out.Players, PlayerFormSeries{
				Name:   p.WebName,
				Series: scout.FormSeries(summary.History, args.Cumulative),
			})
		}
		return toolMarshal(out)
	}
}
