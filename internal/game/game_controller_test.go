package game

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/internal/testutil"
)

func (f *fixture) router() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if name := c.GetHeader("X-Test-Officer"); name != "" {
			common.SetOfficer(c, name)
		}
		c.Next()
	})
	GameRoutes(r.Group("/api"), f.db, f.feed)
	return r
}

type reportEnvelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    ReportResponse `json:"data"`
}

func TestReportResultEndpoint(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	body := func(winner, loser string, round int, officerName string) gin.H {
		return gin.H{
			"game_id":         f.game.ID,
			"round":           round,
			"winning_team_id": f.teams[winner],
			"losing_team_id":  f.teams[loser],
			"officer_name":    officerName,
		}
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/game-results", body("red", "blue", 1, "Officer Diaz"))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
	var env reportEnvelope
	testutil.DecodeJSON(t, w, &env)
	if env.Message != "Result recorded" || env.Data.Outcome != OutcomeRecorded {
		t.Errorf("response = %+v", env)
	}

	// officer from the session
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/game-results", body("blue", "red", 1, ""), "X-Test-Officer", "Officer Kim")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
	testutil.DecodeJSON(t, w, &env)
	if env.Message != "Result corrected" {
		t.Errorf("message = %q", env.Message)
	}

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/game-results", body("blue", "red", 1, "Officer Diaz"))
	testutil.DecodeJSON(t, w, &env)
	if w.Code != http.StatusOK || env.Message != "No change" {
		t.Errorf("identical report: code %d, message %q", w.Code, env.Message)
	}

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{"missing fields", gin.H{"game_id": f.game.ID}, http.StatusBadRequest},
		{"round out of range", body("red", "blue", 9, "Officer Diaz"), http.StatusBadRequest},
		{"same team", body("red", "red", 1, "Officer Diaz"), http.StatusBadRequest},
		{"no officer anywhere", body("red", "blue", 1, ""), http.StatusBadRequest},
		{"team outside matchup", body("red", "gold", 1, "Officer Diaz"), http.StatusBadRequest},
		{"unknown officer", body("red", "blue", 1, "Officer Nobody"), http.StatusNotFound},
		{"unknown game", gin.H{"game_id": 999, "round": 1, "winning_team_id": f.teams["red"], "losing_team_id": f.teams["blue"], "officer_name": "Officer Diaz"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoJSON(t, r, http.MethodPost, "/api/game-results", tt.body)
			if w.Code != tt.want {
				t.Errorf("code = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
	f.assertLedger(t)
}

func TestGetGames(t *testing.T) {
	f := newFixture(t)
	r := f.router()

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/games?half=first", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var games []GameSummary
	testutil.DecodeJSON(t, w, &games)
	if len(games) != 1 {
		t.Fatalf("games = %d, want 1", len(games))
	}
	g := games[0]
	if g.Name != "Tug of War" || g.Teams[0].Color != "red" || g.Teams[1].Color != "blue" {
		t.Errorf("summary = %+v", g)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/games?half=second", nil)
	testutil.DecodeJSON(t, w, &games)
	if len(games) != 0 {
		t.Errorf("second half games = %d, want 0", len(games))
	}
	if w.Body.String() != "[]" {
		t.Errorf("empty body = %s, want []", w.Body.String())
	}
}

func TestGetOfficerGames(t *testing.T) {
	f := newFixture(t)
	f.report(t, 2, "gold", "green", "Officer Diaz")
	r := f.router()

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/officers/Officer%20Diaz/games?half=first", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
	var games []OfficerGame
	testutil.DecodeJSON(t, w, &games)
	if len(games) != 1 || len(games[0].Rounds) != 2 {
		t.Fatalf("games = %+v", games)
	}
	if games[0].Rounds[0].WinnerID != nil {
		t.Errorf("round 1 winner = %v, want none", *games[0].Rounds[0].WinnerID)
	}
	if w := games[0].Rounds[1].WinnerID; w == nil || *w != f.teams["gold"] {
		t.Errorf("round 2 winner = %v, want gold", w)
	}
	if games[0].Rounds[1].Teams[0].Color != "green" {
		t.Errorf("round 2 teams = %+v", games[0].Rounds[1].Teams)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/officers/Officer%20Diaz/games?half=second", nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("unassigned half: code %d body %s", w.Code, w.Body.String())
	}

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/officers/Nobody/games", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown officer code = %d, want 404", w.Code)
	}
}

func TestGetGameResults(t *testing.T) {
	f := newFixture(t)
	f.report(t, 1, "red", "blue", "Officer Diaz")
	r := f.router()

	w := testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/games/%d/results", f.game.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var results []GameResult
	testutil.DecodeJSON(t, w, &results)
	if len(results) != 1 || results[0].WinningTeamID != f.teams["red"] {
		t.Errorf("results = %+v", results)
	}

	if w := testutil.DoJSON(t, r, http.MethodGet, "/api/games/abc/results", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id code = %d", w.Code)
	}
	if w := testutil.DoJSON(t, r, http.MethodGet, "/api/games/999/results", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing game code = %d", w.Code)
	}
}
