package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
)

// TeamController serves read-only team views. Scores and counters change
// only through the game and completion packages.
type TeamController struct {
	repo TeamRepository
}

func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// GetAllTeams godoc
// @Summary List teams
// @Description Every team with its score and officer-challenge counter, ordered by color.
// @Tags teams
// @Produce json
// @Success 200 {array} Team
// @Failure 500 {object} responses.ErrorResponse
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.ListTeams(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams", err)
		return
	}
	if teams == nil {
		teams = []Team{}
	}
	c.JSON(http.StatusOK, teams)
}

// GetLeaderboard godoc
// @Summary Leaderboard
// @Description Team colors ordered by score, highest first.
// @Tags teams
// @Produce json
// @Success 200 {array} LeaderboardEntry
// @Failure 500 {object} responses.ErrorResponse
// @Router /leaderboard [get]
func (tc *TeamController) GetLeaderboard(c *gin.Context) {
	entries, err := tc.repo.Leaderboard(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch leaderboard", err)
		return
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
