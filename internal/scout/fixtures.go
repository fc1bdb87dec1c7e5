package scout

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
)

const fixtureHorizon = 3

// TeamOutlook is the forward-looking fixture summary for one team.
type TeamOutlook struct {
	TeamID  int     `json:"team_id"`
	Summary string  `json:"next_fixtures_summary"`
	Ease    float64 `json:"fixture_ease_score"`
}

// ComputeTeamOutlooks builds the next-3-fixtures summary and normalized ease
// score for every team. Only unfinished fixtures participate, in kickoff
// order; fixtures without a parseable kickoff sort after dated ones, source
// order preserved within ties.
func ComputeTeamOutlooks(teams []fplapi.Team, fixtures []fplapi.Fixture) map[int]TeamOutlook {
	byID := make(map[int]fplapi.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	minS, maxS := strengthRange(teams)
	midpoint := (minS + maxS) / 2

	type datedFixture struct {
		fplapi.Fixture
		kickoff time.Time
		dated   bool
		index   int
	}
	upcoming := make([]datedFixture, 0, len(fixtures))
	for i, f := range fixtures {
		if f.Finished {
			continue
		}
		df := datedFixture{Fixture: f, index: i}
		if ts, err := time.Parse(time.RFC3339, f.KickoffTime); err == nil {
			df.kickoff = ts
			df.dated = true
		}
		upcoming = append(upcoming, df)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if a.dated != b.dated {
			return a.dated
		}
		if a.dated && !a.kickoff.Equal(b.kickoff) {
			return a.kickoff.Before(b.kickoff)
		}
		return a.index < b.index
	})

	out := make(map[int]TeamOutlook, len(teams))
	for _, team := range teams {
		var parts []string
		var strength float64
		n := 0
		for _, f := range upcoming {
			if n >= fixtureHorizon {
				break
			}
			var oppID int
			var home bool
			switch team.ID {
			case f.TeamH:
				oppID, home = f.TeamA, true
			case f.TeamA:
				oppID, home = f.TeamH, false
			default:
				continue
			}
			opp, known := byID[oppID]
			short := opp.ShortName
			if !known {
				short = "UNK"
			}
			if home {
				parts = append(parts, fmt.Sprintf("vs %s (H)", short))
				// Opponent travels: their away strength is what we face.
				if known {
					strength += float64(opp.StrengthAway)
				} else {
					strength += midpoint
				}
			} else {
				parts = append(parts, fmt.Sprintf("@ %s (A)", short))
				if known {
					strength += float64(opp.StrengthHome)
				} else {
					strength += midpoint
				}
			}
			n++
		}

		outlook := TeamOutlook{TeamID: team.ID, Summary: noFixturesSentinel, Ease: 0.5}
		if n > 0 {
			outlook.Summary = strings.Join(parts, ", ")
			outlook.Ease = easeScore(strength/float64(n), minS, maxS)
		}
		out[team.ID] = outlook
	}
	return out
}

// ApplyFixtureOutlook fills the fixture-derived columns of the table. Rows
// whose team has no outlook keep their neutral defaults.
func ApplyFixtureOutlook(table []Player, teams []fplapi.Team, fixtures []fplapi.Fixture) {
	outlooks := ComputeTeamOutlooks(teams, fixtures)
	for i := range table {
		o, ok := outlooks[table[i].TeamID]
		if !ok {
			continue
		}
		table[i].NextFixtures = o.Summary
		table[i].FixtureEase = o.Ease
		table[i].DifficultyRating = table[i].PPG * (1 + o.Ease)
	}
}

// strengthRange returns the global min and max over every team's home and
// away overall strength.
func strengthRange(teams []fplapi.Team) (float64, float64) {
	minS, maxS := 0.0, 0.0
	first := true
	for _, t := range teams {
		for _, s := range []float64{float64(t.StrengthHome), float64(t.StrengthAway)} {
			if first || s < minS {
				minS = s
			}
			if first || s > maxS {
				maxS = s
			}
			first = false
		}
	}
	return minS, maxS
}

// easeScore normalizes average opponent strength into [0,1], where 1 is the
// easiest possible run. A degenerate range carries no discriminating signal
// and maps to 0.5.
func easeScore(avgStrength, minS, maxS float64) float64 {
	if maxS <= minS {
		return 0.5
	}
	ease := 1 - (avgStrength-minS)/(maxS-minS)
	if ease < 0 {
		return 0
	}
	if ease > 1 {
		return 1
	}
	return ease
}
