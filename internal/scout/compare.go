package scout

import (
	"fmt"
	"strings"
)

// radarMetrics are the axes of the comparison radar, in display order.
var radarMetrics = []struct {
	name     string
	accessor func(Player) float64
}{
	{"creativity", func(p Player) float64 { return p.Creativity }},
	{"influence", func(p Player) float64 { return p.Influence }},
	{"threat", func(p Player) float64 { return p.Threat }},
	{"ict_index", func(p Player) float64 { return p.ICTIndex }},
	{"points_per_game", func(p Player) float64 { return p.PPG }},
}

// RadarPoint is one normalized axis value for one player.
type RadarPoint struct {
	Metric string  `json:"metric"`
	Raw    float64 `json:"raw"`
	Value  float64 `json:"value"` // normalized 0-100 across the pair
}

// ComparedPlayer is one side of a pair comparison.
type ComparedPlayer struct {
	Name      string       `json:"name"`
	Team      string       `json:"team"`
	Position  string       `json:"position"`
	Cost      float64      `json:"cost"`
	Ownership float64      `json:"ownership_pct"`
	Points    int          `json:"total_points"`
	Radar     []RadarPoint `json:"radar"`
}

// ComparePair builds normalized radar metrics for two players looked up by
// web name (case-insensitive). Each axis is min-max scaled to 0-100 across
// the pair; an axis where both players are equal has no range and maps both
// to 0.
func ComparePair(table []Player, nameA, nameB string) ([2]ComparedPlayer, error) {
	var out [2]ComparedPlayer
	a, err := FindByName(table, nameA)
	if err != nil {
		return out, err
	}
	b, err := FindByName(table, nameB)
	if err != nil {
		return out, err
	}

	out[0] = comparedPlayer(a)
	out[1] = comparedPlayer(b)
	for _, m := range radarMetrics {
		va, vb := m.accessor(a), m.accessor(b)
		lo, hi := va, vb
		if lo > hi {
			lo, hi = hi, lo
		}
		span := hi - lo
		if span == 0 {
			span = 1
		}
		out[0].Radar = append(out[0].Radar, RadarPoint{Metric: m.name, Raw: va, Value: (va - lo) / span * 100})
		out[1].Radar = append(out[1].Radar, RadarPoint{Metric: m.name, Raw: vb, Value: (vb - lo) / span * 100})
	}
	return out, nil
}

func comparedPlayer(p Player) ComparedPlayer {
	return ComparedPlayer{
		Name:      p.WebName,
		Team:      p.TeamName,
		Position:  p.Position,
		Cost:      p.Cost,
		Ownership: p.Ownership,
		Points:    p.TotalPoints,
	}
}

// FindByName resolves a player by web name, falling back to full name.
func FindByName(table []Player, name string) (Player, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return Player{}, fmt.Errorf("player name is required")
	}
	for _, p := range table {
		if strings.ToLower(p.WebName) == want {
			return p, nil
		}
	}
	for _, p := range table {
		if strings.ToLower(p.Name) == want {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("player not found: %s", name)
}
