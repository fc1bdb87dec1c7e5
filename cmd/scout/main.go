// Command scout prints top-players-by-position reports to stdout, the
// console counterpart of the scout-server tools.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-vibe-scout/internal/cache"
	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
	"github.com/aatrey56/fpl-vibe-scout/internal/scout"
)

func main() {
	_ = godotenv.Load()

	var (
		baseURL    string
		minMinutes int
		maxCost    float64
		topN       int
		metric     string
	)

	root := &cobra.Command{
		Use:   "scout",
		Short: "FPL player analysis: top players by position",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			client := fplapi.NewClient(baseURL, cache.New(true), logger)

			bootstrap, err := client.Bootstrap(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load data: %w", err)
			}
			table := scout.BuildTable(bootstrap.Elements, bootstrap.Teams)
			if fixtures, err := client.Fixtures(cmd.Context()); err != nil {
				logger.Warn("fixtures unavailable, using neutral fixture outlook", "error", err)
			} else {
				scout.ApplyFixtureOutlook(table, bootstrap.Teams, fixtures)
			}

			opts := scout.FilterOptions{MinMinutes: minMinutes}
			if maxCost > 0 {
				opts.MaxCost = &maxCost
			}

			fmt.Printf("Total players loaded: %d\n", len(table))
			for _, pos := range []string{scout.PosGKP, scout.PosDEF, scout.PosMID, scout.PosFWD} {
				opts.Positions = []string{pos}
				rows, err := scout.TopN(scout.Filter(table, opts), metric, topN)
				if err != nil {
					return err
				}
				printPositionReport(pos, metric, rows)
			}
			return nil
		},
	}

	root.Flags().StringVar(&baseURL, "base-url", "", "FPL API base URL (default official)")
	root.Flags().IntVar(&minMinutes, "min-minutes", 500, "minimum minutes played")
	root.Flags().Float64Var(&maxCost, "max-cost", 0, "maximum price in millions (0 = no limit)")
	root.Flags().IntVar(&topN, "top", 10, "rows per position")
	root.Flags().StringVar(&metric, "metric", "ppm", "metric to rank by")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printPositionReport(position string, metric string, rows []scout.Player) {
	fmt.Printf("\nTOP %d %s (by %s)\n", len(rows), position, metric)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tTEAM\tPRICE\tPOINTS\tPPG\tPPM\tMINUTES\tOWN%\tNEXT 3")
	for _, p := range rows {
		fmt.Fprintf(w, "%s\t%s\t£%.1fm\t%d\t%.1f\t%.2f\t%d\t%.1f\t%s\n",
			p.WebName, p.TeamShort, p.Cost, p.TotalPoints, p.PPG, p.PPM, p.Minutes, p.Ownership, p.NextFixtures)
	}
	w.Flush()
}
