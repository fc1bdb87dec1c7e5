package fplapi

import (
	"bytes"
	"strconv"
)

// Stat is a numeric value that the FPL API serves inconsistently: sometimes
// as a JSON number, sometimes as a quoted numeric string ("4.5"), sometimes
// as null. Anything unparseable decodes to 0 rather than failing the batch.
type Stat float64

func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*s = 0
		return nil
	}
	*s = Stat(f)
	return nil
}

// Element is a raw player record from bootstrap-static.
type Element struct {
	ID            int    `json:"id"`
	FirstName     string `json:"first_name"`
	SecondName    string `json:"second_name"`
	WebName       string `json:"web_name"`
	Team          int    `json:"team"`
	ElementType   int    `json:"element_type"`
	NowCost       int    `json:"now_cost"`
	TotalPoints   int    `json:"total_points"`
	Minutes       int    `json:"minutes"`
	Form          Stat   `json:"form"`
	SelectedBy    Stat   `json:"selected_by_percent"`
	GoalsScored   int    `json:"goals_scored"`
	Assists       int    `json:"assists"`
	CleanSheets   int    `json:"clean_sheets"`
	Saves         int    `json:"saves"`
	Photo         string `json:"photo"`
	PointsPerGame Stat   `json:"points_per_game"`
	Creativity    Stat   `json:"creativity"`
	Influence     Stat   `json:"influence"`
	Threat        Stat   `json:"threat"`
	ICTIndex      Stat   `json:"ict_index"`
	Matches       int    `json:"matches,omitempty"`
}

// Team is a raw team record from bootstrap-static. Code is the club code
// used for badge assets, distinct from the season-scoped ID.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	Code         int    `json:"code"`
	StrengthHome int    `json:"strength_overall_home"`
	StrengthAway int    `json:"strength_overall_away"`
}

// Bootstrap is the subset of bootstrap-static the pipeline depends on.
type Bootstrap struct {
	Elements []Element `json:"elements"`
	Teams    []Team    `json:"teams"`
}

// Fixture is a raw fixture record. KickoffTime is RFC3339 or null for
// fixtures without a confirmed date.
type Fixture struct {
	Event       int    `json:"event"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	KickoffTime string `json:"kickoff_time"`
	Finished    bool   `json:"finished"`
}

// RoundScore is one gameweek entry from element-summary history.
type RoundScore struct {
	Round       int `json:"round"`
	TotalPoints int `json:"total_points"`
	Minutes     int `json:"minutes"`
}

// ElementSummary is the per-player history response.
type ElementSummary struct {
	History []RoundScore `json:"history"`
}

// StandingEntry is one ranked row from a classic league standings page.
type StandingEntry struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	EntryName  string `json:"entry_name"`
	Total      int    `json:"total"`
}

// LeagueStandings is the classic league standings response.
type LeagueStandings struct {
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		Results []StandingEntry `json:"results"`
	} `json:"standings"`
}

// LiveElement is one player's in-gameweek stat line from event live.
type LiveElement struct {
	ID    int `json:"id"`
	Stats struct {
		Minutes     int `json:"minutes"`
		TotalPoints int `json:"total_points"`
	} `json:"stats"`
}

// EventLive is the live gameweek response.
type EventLive struct {
	Elements []LiveElement `json:"elements"`
}
