package scout

import "github.com/aatrey56/fpl-vibe-scout/internal/fplapi"

// FormPoint is one gameweek of a player's form series.
type FormPoint struct {
	Gameweek int `json:"gameweek"`
	Points   int `json:"points"`
	Minutes  int `json:"minutes"`
}

// FormSeries converts element-summary history into an ordered form series.
// With cumulative set, each point carries the running season total instead
// of the single-gameweek score.
func FormSeries(history []fplapi.RoundScore, cumulative bool) []FormPoint {
	out := make([]FormPoint, 0, len(history))
	running := 0
	for _, h := range history {
		pts := h.TotalPoints
		if cumulative {
			running += h.TotalPoints
			pts = running
		}
		out = append(out, FormPoint{Gameweek: h.Round, Points: pts, Minutes: h.Minutes})
	}
	return out
}

// LeagueRow is one ranked entry of a classic league report.
type LeagueRow struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	EntryName  string `json:"entry_name"`
	Total      int    `json:"total"`
}

// LeagueReport is the League Spy summary: the ranked table plus the average
// score of the top ten entries.
type LeagueReport struct {
	LeagueName  string      `json:"league_name"`
	Entries     []LeagueRow `json:"entries"`
	TopTenAvg   float64     `json:"top_ten_avg"`
	EntriesSeen int         `json:"entries_seen"`
}

// BuildLeagueReport summarizes classic league standings.
func BuildLeagueReport(standings *fplapi.LeagueStandings) LeagueReport {
	report := LeagueReport{LeagueName: standings.League.Name}
	sum := 0
	for i, s := range standings.Standings.Results {
		report.Entries = append(report.Entries, LeagueRow{
			Rank:       s.Rank,
			PlayerName: s.PlayerName,
			EntryName:  s.EntryName,
			Total:      s.Total,
		})
		if i < 10 {
			sum += s.Total
		}
	}
	report.EntriesSeen = len(report.Entries)
	if n := min(len(report.Entries), 10); n > 0 {
		report.TopTenAvg = float64(sum) / float64(n)
	}
	return report
}
