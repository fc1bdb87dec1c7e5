package scout

import (
	"fmt"
	"math"
	"strings"

	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
)

const (
	photoBaseURL = "https://resources.premierleague.com/premierleague/photos/players/110x140/"
	badgeBaseURL = "https://resources.premierleague.com/premierleague/badges/70/t"
)

const noFixturesSentinel = "No fixtures scheduled"

// BuildTable derives one feature row per raw player record. Malformed or
// missing fields are repaired with typed defaults; a player is never dropped
// and the batch never fails.
func BuildTable(elements []fplapi.Element, teams []fplapi.Team) []Player {
	byID := make(map[int]fplapi.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	table := make([]Player, 0, len(elements))
	for _, e := range elements {
		team, ok := byID[e.Team]
		if !ok {
			team = fplapi.Team{Name: fmt.Sprintf("Team %d", e.Team), ShortName: "???"}
		}

		cost := float64(e.NowCost) / 10

		ppm := 0.0
		if cost > 0 {
			ppm = float64(e.TotalPoints) / cost
		}

		games := e.Matches
		if games <= 0 {
			games = int(math.Round(float64(e.Minutes) / 90))
		}
		if games < 1 {
			games = 1
		}
		ppg := float64(e.TotalPoints) / float64(games)

		formValue := 0.0
		if cost > 0 {
			formValue = float64(e.Form) / cost
		}

		p := Player{
			ID:          e.ID,
			Name:        strings.TrimSpace(e.FirstName + " " + e.SecondName),
			WebName:     e.WebName,
			TeamID:      e.Team,
			TeamName:    team.Name,
			TeamShort:   team.ShortName,
			Position:    PositionCode(e.ElementType),
			Cost:        cost,
			TotalPoints: e.TotalPoints,
			Minutes:     e.Minutes,
			GamesPlayed: games,
			Form:        float64(e.Form),
			Ownership:   float64(e.SelectedBy),
			PPM:         ppm,
			PPG:         ppg,
			FormValue:   formValue,
			PointsPer90: per90(e.TotalPoints, e.Minutes),
			Creativity:  float64(e.Creativity),
			Influence:   float64(e.Influence),
			Threat:      float64(e.Threat),
			ICTIndex:    float64(e.ICTIndex),
			PhotoURL:    photoURL(e.Photo),
			BadgeURL:    badgeURL(team.Code),
			// Fixture fields stay at their neutral defaults until
			// ApplyFixtureOutlook runs; a failed fixture fetch leaves
			// them as-is.
			NextFixtures: noFixturesSentinel,
			FixtureEase:  0.5,
		}
		p.GoalsPer90 = per90(e.GoalsScored, e.Minutes)
		p.AssistsPer90 = per90(e.Assists, e.Minutes)
		p.GoalInvolvements = p.GoalsPer90 + p.AssistsPer90
		p.CleanSheetsPer90 = per90(e.CleanSheets, e.Minutes)
		p.SavesPer90 = per90(e.Saves, e.Minutes)
		p.DifficultyRating = p.PPG * (1 + p.FixtureEase)

		table = append(table, p)
	}
	return table
}

// per90 converts a cumulative stat to a per-90-minute rate. Zero minutes
// means the rate is undefined and reported as 0.
func per90(stat int, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(stat) / float64(minutes) * 90
}

// photoURL builds the canonical headshot URL from the raw photo field.
// Raw values come as "123456.jpg" or occasionally "p123456"; the canonical
// asset id always carries the "p" prefix and a .png extension.
func photoURL(photo string) string {
	id := strings.TrimSuffix(photo, ".jpg")
	if id == "" {
		return ""
	}
	if !strings.HasPrefix(id, "p") {
		id = "p" + id
	}
	return photoBaseURL + id + ".png"
}

// badgeURL builds the club badge URL from the zero-padded club code.
func badgeURL(code int) string {
	if code <= 0 {
		return ""
	}
	return fmt.Sprintf("%s%03d.png", badgeBaseURL, code)
}
