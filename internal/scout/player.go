// Package scout implements the metric-derivation and fixture-difficulty
// pipeline: raw player/team/fixture records in, a normalized per-player
// feature table out, plus filtering, ranking, comparison and selection
// queries over that table. The table is recomputed per query cycle and
// treated as immutable once built; queries return new views.
package scout

import "sort"

// Position codes in element_type order (1=GKP, 2=DEF, 3=MID, 4=FWD).
const (
	PosGKP = "GKP"
	PosDEF = "DEF"
	PosMID = "MID"
	PosFWD = "FWD"
)

var positionCodes = map[int]string{
	1: PosGKP,
	2: PosDEF,
	3: PosMID,
	4: PosFWD,
}

var positionNames = map[string]string{
	PosGKP: "Goalkeepers",
	PosDEF: "Defenders",
	PosMID: "Midfielders",
	PosFWD: "Forwards",
}

// PositionCode maps an element_type id to its position code, or "UNK".
func PositionCode(elementType int) string {
	if code, ok := positionCodes[elementType]; ok {
		return code
	}
	return "UNK"
}

// Player is one row of the derived feature table.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	WebName   string `json:"web_name"`
	TeamID    int    `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamShort string `json:"team_short"`
	Position  string `json:"position"`

	Cost        float64 `json:"cost"`
	TotalPoints int     `json:"total_points"`
	Minutes     int     `json:"minutes"`
	GamesPlayed int     `json:"games_played"`
	Form        float64 `json:"form"`
	Ownership   float64 `json:"ownership_pct"`

	PPM         float64 `json:"ppm"`
	PPG         float64 `json:"ppg"`
	FormValue   float64 `json:"form_value"`
	PointsPer90 float64 `json:"points_per_90"`

	GoalsPer90       float64 `json:"goals_per_90"`
	AssistsPer90     float64 `json:"assists_per_90"`
	GoalInvolvements float64 `json:"goal_involvements_per_90"`
	CleanSheetsPer90 float64 `json:"clean_sheets_per_90"`
	SavesPer90       float64 `json:"saves_per_90"`

	Creativity float64 `json:"creativity"`
	Influence  float64 `json:"influence"`
	Threat     float64 `json:"threat"`
	ICTIndex   float64 `json:"ict_index"`

	PhotoURL string `json:"photo_url"`
	BadgeURL string `json:"badge_url"`

	NextFixtures     string  `json:"next_3_fixtures"`
	FixtureEase      float64 `json:"fixture_ease_score"`
	DifficultyRating float64 `json:"fixture_difficulty_rating"`
}

// metricAccessors maps sortable metric names to row accessors. Keys are the
// names accepted by TopN and the top_players tool.
var metricAccessors = map[string]func(Player) float64{
	"ppm":               func(p Player) float64 { return p.PPM },
	"ppg":               func(p Player) float64 { return p.PPG },
	"total_points":      func(p Player) float64 { return float64(p.TotalPoints) },
	"form":              func(p Player) float64 { return p.Form },
	"form_value":        func(p Player) float64 { return p.FormValue },
	"minutes":           func(p Player) float64 { return float64(p.Minutes) },
	"ownership":         func(p Player) float64 { return p.Ownership },
	"points_per_90":     func(p Player) float64 { return p.PointsPer90 },
	"goals_per_90":      func(p Player) float64 { return p.GoalsPer90 },
	"assists_per_90":    func(p Player) float64 { return p.AssistsPer90 },
	"difficulty_rating": func(p Player) float64 { return p.DifficultyRating },
}

// MetricNames lists the metric names TopN accepts.
func MetricNames() []string {
	names := make([]string, 0, len(metricAccessors))
	for name := range metricAccessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
