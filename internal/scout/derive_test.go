package scout

import (
	"math"
	"testing"

	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
)

// testTeams returns a small team list with a spread of strength values.
func testTeams() []fplapi.Team {
	return []fplapi.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS", Code: 3, StrengthHome: 1350, StrengthAway: 1300},
		{ID: 2, Name: "Chelsea", ShortName: "CHE", Code: 8, StrengthHome: 1250, StrengthAway: 1200},
		{ID: 3, Name: "Luton", ShortName: "LUT", Code: 102, StrengthHome: 1050, StrengthAway: 1000},
	}
}

func TestBuildTable_Metrics(t *testing.T) {
	elements := []fplapi.Element{
		{
			ID: 10, FirstName: "Bukayo", SecondName: "Saka", WebName: "Saka",
			Team: 1, ElementType: 3, NowCost: 90, TotalPoints: 120, Minutes: 1800,
			Form: 6.5, SelectedBy: 45.2, GoalsScored: 8, Assists: 6, CleanSheets: 5, Saves: 0,
			Photo: "223340.jpg",
		},
	}
	table := BuildTable(elements, testTeams())
	if len(table) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table))
	}
	p := table[0]

	if p.Name != "Bukayo Saka" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.TeamName != "Arsenal" || p.TeamShort != "ARS" {
		t.Errorf("team: got %q/%q", p.TeamName, p.TeamShort)
	}
	if p.Position != PosMID {
		t.Errorf("position: got %q", p.Position)
	}
	if p.Cost != 9.0 {
		t.Errorf("cost: got %v", p.Cost)
	}
	if want := 120.0 / 9.0; math.Abs(p.PPM-want) > 1e-9 {
		t.Errorf("ppm: got %v, want %v", p.PPM, want)
	}
	// 1800 minutes rounds to 20 games.
	if p.GamesPlayed != 20 {
		t.Errorf("games played: got %d", p.GamesPlayed)
	}
	if want := 120.0 / 20.0; math.Abs(p.PPG-want) > 1e-9 {
		t.Errorf("ppg: got %v, want %v", p.PPG, want)
	}
	if want := 8.0 / 1800 * 90; math.Abs(p.GoalsPer90-want) > 1e-9 {
		t.Errorf("goals per 90: got %v, want %v", p.GoalsPer90, want)
	}
	if want := p.GoalsPer90 + p.AssistsPer90; math.Abs(p.GoalInvolvements-want) > 1e-9 {
		t.Errorf("goal involvements: got %v, want %v", p.GoalInvolvements, want)
	}
}

func TestBuildTable_ZeroDenominators(t *testing.T) {
	elements := []fplapi.Element{
		// Zero cost and zero minutes: every ratio must be 0, never NaN/Inf.
		{ID: 1, WebName: "Ghost", Team: 1, ElementType: 4, NowCost: 0, TotalPoints: 10, Minutes: 0},
	}
	table := BuildTable(elements, testTeams())
	p := table[0]

	for name, v := range map[string]float64{
		"ppm":            p.PPM,
		"form_value":     p.FormValue,
		"points_per_90":  p.PointsPer90,
		"goals_per_90":   p.GoalsPer90,
		"assists_per_90": p.AssistsPer90,
		"cs_per_90":      p.CleanSheetsPer90,
		"saves_per_90":   p.SavesPer90,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s: got non-finite %v", name, v)
		}
	}
	if p.PPM != 0 {
		t.Errorf("ppm with zero cost: got %v, want 0", p.PPM)
	}
	if p.GoalsPer90 != 0 {
		t.Errorf("goals per 90 with zero minutes: got %v, want 0", p.GoalsPer90)
	}
	// Zero minutes floors games played at 1, so ppg is the raw total.
	if p.GamesPlayed != 1 || p.PPG != 10 {
		t.Errorf("games/ppg: got %d/%v, want 1/10", p.GamesPlayed, p.PPG)
	}
}

func TestBuildTable_UnknownTeamPlaceholder(t *testing.T) {
	elements := []fplapi.Element{
		{ID: 1, WebName: "Stray", Team: 99, ElementType: 2, NowCost: 40},
	}
	table := BuildTable(elements, testTeams())
	p := table[0]
	if p.TeamName != "Team 99" {
		t.Errorf("team name: got %q, want placeholder", p.TeamName)
	}
	if p.TeamShort != "???" {
		t.Errorf("team short: got %q", p.TeamShort)
	}
}

func TestBuildTable_MatchesFieldPreferred(t *testing.T) {
	elements := []fplapi.Element{
		{ID: 1, WebName: "A", Team: 1, ElementType: 3, NowCost: 50, TotalPoints: 60, Minutes: 900, Matches: 15},
		{ID: 2, WebName: "B", Team: 1, ElementType: 3, NowCost: 50, TotalPoints: 60, Minutes: 900, Matches: 0},
	}
	table := BuildTable(elements, testTeams())
	if table[0].GamesPlayed != 15 {
		t.Errorf("explicit matches: got %d, want 15", table[0].GamesPlayed)
	}
	if table[1].GamesPlayed != 10 {
		t.Errorf("minutes estimate: got %d, want 10", table[1].GamesPlayed)
	}
}

func TestPhotoURL(t *testing.T) {
	tests := []struct {
		name  string
		photo string
		want  string
	}{
		{"StripJPG", "223340.jpg", photoBaseURL + "p223340.png"},
		{"AlreadyPrefixed", "p223340.jpg", photoBaseURL + "p223340.png"},
		{"NoExtension", "41270", photoBaseURL + "p41270.png"},
		{"Empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := photoURL(tc.photo); got != tc.want {
				t.Errorf("photoURL(%q) = %q; want %q", tc.photo, got, tc.want)
			}
		})
	}
}

func TestBadgeURL(t *testing.T) {
	if got, want := badgeURL(3), badgeBaseURL+"003.png"; got != want {
		t.Errorf("badgeURL(3) = %q; want %q", got, want)
	}
	if got := badgeURL(0); got != "" {
		t.Errorf("badgeURL(0) = %q; want empty", got)
	}
}

func TestBuildTable_NeutralFixtureDefaults(t *testing.T) {
	elements := []fplapi.Element{
		{ID: 1, WebName: "A", Team: 1, ElementType: 1, NowCost: 45, TotalPoints: 40, Minutes: 900},
	}
	p := BuildTable(elements, testTeams())[0]
	if p.NextFixtures != noFixturesSentinel {
		t.Errorf("next fixtures default: got %q", p.NextFixtures)
	}
	if p.FixtureEase != 0.5 {
		t.Errorf("ease default: got %v, want 0.5", p.FixtureEase)
	}
	if want := p.PPG * 1.5; math.Abs(p.DifficultyRating-want) > 1e-9 {
		t.Errorf("difficulty rating default: got %v, want %v", p.DifficultyRating, want)
	}
}
