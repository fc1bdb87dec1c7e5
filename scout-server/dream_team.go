package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

// DreamTeamArgs is the input schema for the dream_team tool.
type DreamTeamArgs struct {
	Formation string  `json:"formation" jsonschema:"Outfield formation DEF-MID-FWD (default 4-4-2)"`
	Budget    float64 `json:"budget" jsonschema:"Informational budget in millions (default 100); never enforced"`
}

func dreamTeamHandler(svc *scoutService) func(context.Context, *mcp.CallToolRequest, DreamTeamArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args DreamTeamArgs) (*mcp.CallToolResult, any, error) {
		formationStr := args.Formation
		if formationStr == "" {
			formationStr = "4-4-2"
		}
		formation, err := scout.ParseFormation(formationStr)
		if err != nil {
			return toolError(err), nil, nil
		}
		budget := args.Budget
		if budget <= 0 {
			budget = 100
		}
		table, err := svc.loadTable(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(scout.BuildSquad(table, formation, budget))
	}
}
