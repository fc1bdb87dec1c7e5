package scout

import (
	"fmt"
	"strconv"
	"strings"
)

// TopN returns the n rows with the largest value of the named metric.
// Ties keep input order (first seen ranks first). Unknown metric names
// return an error listing what is accepted.
func TopN(table []Player, metric string, n int) ([]Player, error) {
	accessor, ok := metricAccessors[strings.ToLower(strings.TrimSpace(metric))]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (accepted: %s)", metric, strings.Join(MetricNames(), ", "))
	}
	out := sortedBy(table, accessor)
	if n < 0 {
		n = 0
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n], nil
}

// Formation is the outfield slot template; the single goalkeeper slot is
// fixed and not part of the string form.
type Formation struct {
	DEF int
	MID int
	FWD int
}

// ParseFormation parses "4-4-2" style formation strings.
func ParseFormation(s string) (Formation, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Formation{}, fmt.Errorf("formation %q: want DEF-MID-FWD, e.g. 4-4-2", s)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return Formation{}, fmt.Errorf("formation %q: bad slot count %q", s, part)
		}
		nums[i] = n
	}
	return Formation{DEF: nums[0], MID: nums[1], FWD: nums[2]}, nil
}

// Squad is the result of a greedy dream-team fill.
type Squad struct {
	Players     []Player `json:"players"`
	TotalPoints int      `json:"total_points"`
	TotalCost   float64  `json:"total_cost"`
	Budget      float64  `json:"budget"`
	BudgetLeft  float64  `json:"budget_left"`
}

// BuildSquad greedily fills 1 GKP plus the formation's slot counts, taking
// the top players by total points within each position. The budget is
// informational only: the delta is reported, never enforced, and slots are
// filled independently of cost and of earlier picks. This mirrors the
// observed product behavior and is intentionally not an optimizer.
func BuildSquad(table []Player, formation Formation, budget float64) Squad {
	squad := Squad{Budget: budget}
	for _, slot := range []struct {
		position string
		count    int
	}{
		{PosGKP, 1},
		{PosDEF, formation.DEF},
		{PosMID, formation.MID},
		{PosFWD, formation.FWD},
	} {
		picked := topByPosition(table, slot.position, slot.count,
			func(p Player) float64 { return float64(p.TotalPoints) })
		squad.Players = append(squad.Players, picked...)
	}
	for _, p := range squad.Players {
		squad.TotalPoints += p.TotalPoints
		squad.TotalCost += p.Cost
	}
	squad.BudgetLeft = budget - squad.TotalCost
	return squad
}

// topByPosition returns the top count players of one position by metric,
// stable on input order.
func topByPosition(table []Player, position string, count int, metric func(Player) float64) []Player {
	pool := Filter(table, FilterOptions{Positions: []string{position}})
	pool = sortedBy(pool, metric)
	if count > len(pool) {
		count = len(pool)
	}
	if count < 0 {
		count = 0
	}
	return pool[:count]
}

// Team-of-the-week slot counts, fixed by the product.
var totwSlots = []struct {
	position string
	count    int
}{
	{PosGKP, 1},
	{PosDEF, 4},
	{PosMID, 4},
	{PosFWD, 3},
}

// TOTWRow is one lineup row of a team of the week.
type TOTWRow struct {
	Player
	GWPoints  int `json:"gw_points"`
	GWMinutes int `json:"gw_minutes"`
}

// TeamOfWeek selects the highest-scoring lineup for one gameweek from
// per-player live point totals, under fixed slot counts (1 GKP, 4 DEF,
// 4 MID, 3 FWD). Players absent from the live data count as zero points.
func TeamOfWeek(table []Player, livePoints map[int]int, liveMinutes map[int]int) []TOTWRow {
	lineup := make([]TOTWRow, 0, 12)
	for _, slot := range totwSlots {
		picked := topByPosition(table, slot.position, slot.count,
			func(p Player) float64 { return float64(livePoints[p.ID]) })
		for _, p := range picked {
			lineup = append(lineup, TOTWRow{
				Player:    p,
				GWPoints:  livePoints[p.ID],
				GWMinutes: liveMinutes[p.ID],
			})
		}
	}
	return lineup
}
