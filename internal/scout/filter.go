package scout

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FilterOptions are the structured filter criteria. Zero values are no-ops:
// empty Positions means all positions, MinMinutes 0 means no minutes floor,
// nil cost bounds mean unbounded.
type FilterOptions struct {
	Positions  []string
	MinMinutes int
	MaxCost    *float64
	MinCost    *float64
}

// Filter returns the subset of rows matching opts, preserving row order.
func Filter(table []Player, opts FilterOptions) []Player {
	var posSet map[string]bool
	if len(opts.Positions) > 0 {
		posSet = make(map[string]bool, len(opts.Positions))
		for _, p := range opts.Positions {
			posSet[strings.ToUpper(strings.TrimSpace(p))] = true
		}
	}

	out := make([]Player, 0, len(table))
	for _, p := range table {
		if posSet != nil && !posSet[p.Position] {
			continue
		}
		if p.Minutes < opts.MinMinutes {
			continue
		}
		if opts.MaxCost != nil && p.Cost > *opts.MaxCost {
			continue
		}
		if opts.MinCost != nil && p.Cost < *opts.MinCost {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Smart search keyword tables. Keyword order matters: the first keyword
// found in the query wins, and "fwd" must be checked before "fw" so the
// longer form claims the match.
var positionKeywords = []struct {
	keyword string
	code    string
}{
	{"gkp", PosGKP},
	{"mid", PosMID},
	{"def", PosDEF},
	{"fwd", PosFWD},
	{"fw", PosFWD},
}

var costCeilingRe = regexp.MustCompile(`(?:under|<)\s*£?\s*(\d+(\.\d+)?)`)

// SmartSearch parses a free-text query like "best MID under 6.0" into a
// position filter, a cost ceiling and a sort directive, applies them, and
// returns the view together with human-readable descriptions of what was
// applied. An empty query is a no-op.
func SmartSearch(query string, table []Player) ([]Player, []string) {
	if strings.TrimSpace(query) == "" {
		return table, nil
	}

	var applied []string
	filtered := table
	q := strings.ToLower(query)

	for _, pk := range positionKeywords {
		if !strings.Contains(q, pk.keyword) {
			continue
		}
		filtered = Filter(filtered, FilterOptions{Positions: []string{pk.code}})
		applied = append(applied, positionNames[pk.code])
		break
	}

	if m := costCeilingRe.FindStringSubmatch(q); m != nil {
		if limit, err := strconv.ParseFloat(m[1], 64); err == nil {
			filtered = Filter(filtered, FilterOptions{MaxCost: &limit})
			applied = append(applied, fmt.Sprintf("under £%.1fm", limit))
		}
	}

	if strings.Contains(q, "value") {
		filtered = sortedBy(filtered, func(p Player) float64 { return p.PPM })
		applied = append(applied, "sorted by value")
	} else if strings.Contains(q, "best") || strings.Contains(q, "top") {
		filtered = sortedBy(filtered, func(p Player) float64 { return float64(p.TotalPoints) })
		applied = append(applied, "sorted by points")
	}

	return filtered, applied
}

// sortedBy returns a new view sorted descending by metric, stable so equal
// rows keep their filtered order.
func sortedBy(table []Player, metric func(Player) float64) []Player {
	out := make([]Player, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool {
		return metric(out[i]) > metric(out[j])
	})
	return out
}

// FormatFilterList joins applied-filter descriptions for display:
// none → "", one → itself, two → "A and B", more → "A, B, and C".
func FormatFilterList(filters []string) string {
	switch len(filters) {
	case 0:
		return ""
	case 1:
		return filters[0]
	case 2:
		return filters[0] + " and " + filters[1]
	default:
		return strings.Join(filters[:len(filters)-1], ", ") + ", and " + filters[len(filters)-1]
	}
}
