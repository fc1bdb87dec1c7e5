package main

import (
	"crypto/subtle"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"

	"github.com/aatrey56/fpl-vibe-scout/internal/cache"
	"github.com/aatrey56/fpl-vibe-scout/internal/fplapi"
)

func main() {
	_ = godotenv.Load()

	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		baseURL     = flag.String("base-url", "", "FPL API base URL (default official)")
		useCache    = flag.Bool("cache", true, "memoize upstream responses")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via SCOUT_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := &scoutService{
		client: fplapi.NewClient(*baseURL, cache.New(*useCache), logger),
		logger: logger,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-vibe-scout",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_filtered_players",
		Description: "Derived player table filtered by minutes, price and position",
	}, filteredPlayersHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "top_players",
		Description: "Top-N players by a derived metric (ppm, ppg, form, ...)",
	}, topPlayersHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "smart_search",
		Description: "Free-text scout query: position keyword, cost ceiling, sort directive",
	}, smartSearchHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "compare_players",
		Description: "Radar comparison of two players (creativity/influence/threat/ICT/PPG)",
	}, comparePlayersHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "dream_team",
		Description: "Greedy top-points squad fill for a formation (budget informational)",
	}, dreamTeamHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_of_the_week",
		Description: "Highest-scoring lineup for a gameweek (1 GKP, 4 DEF, 4 MID, 3 FWD)",
	}, teamOfWeekHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_standings",
		Description: "Classic league standings with top-10 average points",
	}, leagueStandingsHandler(svc))

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_form",
		Description: "Per-gameweek points history for up to five players",
	}, playerFormHandler(svc))

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("SCOUT_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("SCOUT_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	r := chi.NewRouter()
	r.Use(cors.Default().Handler)

	r.Get("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	r.Get("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	r.Handle(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("scout MCP server listening", "addr", *addr, "path", *mcpPath)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal(err)
	}
}
