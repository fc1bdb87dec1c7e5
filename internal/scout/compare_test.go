package scout

import (
	"math"
	"testing"

	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
)

func compareTable() []Player {
	return []Player{
		{ID: 1, Name: "Bukayo Saka", WebName: "Saka", TeamName: "Arsenal", Position: PosMID,
			Cost: 9.0, Ownership: 45.0, TotalPoints: 120,
			Creativity: 900, Influence: 800, Threat: 1000, ICTIndex: 270, PPG: 6.0},
		{ID: 2, Name: "Cole Palmer", WebName: "Palmer", TeamName: "Chelsea", Position: PosMID,
			Cost: 5.8, Ownership: 20.0, TotalPoints: 110,
			Creativity: 700, Influence: 900, Threat: 1000, ICTIndex: 260, PPG: 6.0},
	}
}

func TestComparePair_Normalization(t *testing.T) {
	pair, err := ComparePair(compareTable(), "Saka", "palmer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	radarValue := func(p ComparedPlayer, metric string) float64 {
		t.Helper()
		for _, r := range p.Radar {
			if r.Metric == metric {
				return r.Value
			}
		}
		t.Fatalf("metric %s missing from radar", metric)
		return 0
	}

	// The pair min-max maps higher raw to 100 and lower to 0.
	if got := radarValue(pair[0], "creativity"); got != 100 {
		t.Errorf("saka creativity: got %v, want 100", got)
	}
	if got := radarValue(pair[1], "creativity"); got != 0 {
		t.Errorf("palmer creativity: got %v, want 0", got)
	}
	if got := radarValue(pair[0], "influence"); got != 0 {
		t.Errorf("saka influence: got %v, want 0", got)
	}
	// Equal raw values have no range: both normalize to 0 by convention.
	for i, name := range []string{"saka", "palmer"} {
		if got := radarValue(pair[i], "threat"); got != 0 {
			t.Errorf("%s threat: got %v, want 0 for equal pair", name, got)
		}
		if got := radarValue(pair[i], "points_per_game"); got != 0 {
			t.Errorf("%s ppg: got %v, want 0 for equal pair", name, got)
		}
	}

	for i := range pair {
		for _, r := range pair[i].Radar {
			if math.IsNaN(r.Value) || r.Value < 0 || r.Value > 100 {
				t.Errorf("player %d metric %s: value %v out of [0,100]", i, r.Metric, r.Value)
			}
		}
	}
	if len(pair[0].Radar) != 5 {
		t.Errorf("radar axes: got %d, want 5", len(pair[0].Radar))
	}
}

func TestComparePair_SummaryFields(t *testing.T) {
	pair, err := ComparePair(compareTable(), "Saka", "Palmer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair[0].Cost != 9.0 || pair[0].Ownership != 45.0 || pair[0].Points != 120 {
		t.Errorf("saka summary: got %+v", pair[0])
	}
	if pair[1].Team != "Chelsea" {
		t.Errorf("palmer team: got %q", pair[1].Team)
	}
}

func TestComparePair_Errors(t *testing.T) {
	table := compareTable()
	if _, err := ComparePair(table, "Saka", "Nobody"); err == nil {
		t.Error("expected error for unknown player")
	}
	if _, err := ComparePair(table, "", "Palmer"); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestFindByName_FullNameFallback(t *testing.T) {
	p, err := FindByName(compareTable(), "cole palmer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 2 {
		t.Errorf("got id %d, want 2", p.ID)
	}
}

func TestFormSeries(t *testing.T) {
	history := []fplapi.RoundScore{
		{Round: 1, TotalPoints: 2, Minutes: 90},
		{Round: 2, TotalPoints: 9, Minutes: 85},
		{Round: 3, TotalPoints: 1, Minutes: 12},
	}

	series := FormSeries(history, false)
	if len(series) != 3 || series[1].Points != 9 || series[1].Gameweek != 2 {
		t.Errorf("per-gameweek series: got %+v", series)
	}

	cumulative := FormSeries(history, true)
	wantTotals := []int{2, 11, 12}
	for i, want := range wantTotals {
		if cumulative[i].Points != want {
			t.Errorf("cumulative gw%d: got %d, want %d", i+1, cumulative[i].Points, want)
		}
	}
}

func TestBuildLeagueReport(t *testing.T) {
	standings := &fplapi.LeagueStandings{}
	standings.League.Name = "Overall"
	for i := 1; i <= 12; i++ {
		standings.Standings.Results = append(standings.Standings.Results, fplapi.StandingEntry{
			Rank: i, PlayerName: "P", EntryName: "E", Total: 100 * i,
		})
	}

	report := BuildLeagueReport(standings)
	if report.LeagueName != "Overall" {
		t.Errorf("league name: got %q", report.LeagueName)
	}
	if report.EntriesSeen != 12 {
		t.Errorf("entries seen: got %d", report.EntriesSeen)
	}
	// Top ten totals are 100..1000, average 550.
	if report.TopTenAvg != 550 {
		t.Errorf("top ten avg: got %v, want 550", report.TopTenAvg)
	}
}

func TestBuildLeagueReport_Empty(t *testing.T) {
	report := BuildLeagueReport(&fplapi.LeagueStandings{})
	if report.TopTenAvg != 0 || report.EntriesSeen != 0 {
		t.Errorf("empty standings: got %+v", report)
	}
}
