package game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
)

// GameController handles game and result HTTP requests
type GameController struct {
	repo        GameRepository
	teamRepo    team.TeamRepository
	officerRepo officer.OfficerRepository
	recorder    *ResultRecorder
}

func NewGameController(repo GameRepository, teamRepo team.TeamRepository, officerRepo officer.OfficerRepository, recorder *ResultRecorder) *GameController {
	return &GameController{
		repo:        repo,
		teamRepo:    teamRepo,
		officerRepo: officerRepo,
		recorder:    recorder,
	}
}

// ReportResult godoc
// @Summary Report or correct a round result
// @Description Records the winner and loser of a round. Re-reporting a different outcome retracts the old points first; re-reporting the same outcome changes nothing.
// @Tags games
// @Accept json
// @Produce json
// @Param request body ReportRequest true "Round result"
// @Success 200 {object} responses.SuccessResponse{data=ReportResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /game-results [post]
func (gc *GameController) ReportResult(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	out, err := gc.recorder.Report(c.Request.Context(), ReportInput{
		GameID:        req.GameID,
		Round:         req.Round,
		WinningTeamID: req.WinningTeamID,
		LosingTeamID:  req.LosingTeamID,
		OfficerName:   common.ResolveOfficer(c, req.OfficerName),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReport), errors.Is(err, ErrTeamNotInMatchup):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, ErrGameNotFound):
			responses.NotFound(c, "Game")
		case errors.Is(err, officer.ErrOfficerNotFound):
			responses.NotFound(c, "Officer")
		case errors.Is(err, team.ErrTeamNotFound):
			responses.NotFound(c, "Team")
		default:
			responses.InternalServerError(c, "Failed to record result", err)
		}
		return
	}

	responses.SendSuccess(c, http.StatusOK, out.Outcome.Message(), ReportResponse{
		Outcome: out.Outcome,
		Result:  out.Result,
	})
}

// GetGames godoc
// @Summary Games of a half
// @Description Games of the first or second half with their round-one teams.
// @Tags games
// @Produce json
// @Param half query string false "first (default) or second"
// @Success 200 {array} GameSummary
// @Failure 500 {object} responses.ErrorResponse
// @Router /games [get]
func (gc *GameController) GetGames(c *gin.Context) {
	ctx := c.Request.Context()
	half := ParseHalf(c.Query("half"))

	games, err := gc.repo.ListGamesByHalf(ctx, half)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch games", err)
		return
	}

	var ids []uint
	for _, g := range games {
		if m, ok := g.Matchups.Round(1); ok {
			ids = append(ids, m[0], m[1])
		}
	}
	byID, err := gc.teamRepo.GetTeamsByIDs(ctx, ids)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams", err)
		return
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, g := range games {
		s := GameSummary{ID: g.ID, Name: g.Name, Half: g.Half}
		if m, ok := g.Matchups.Round(1); ok {
			s.Teams = teamRefs(m, byID)
		}
		summaries = append(summaries, s)
	}
	c.JSON(http.StatusOK, summaries)
}

// GetOfficerGames godoc
// @Summary An officer's game
// @Description The game the officer runs in the half, every round with its teams and current winner. Empty when the officer has no game that half.
// @Tags games
// @Produce json
// @Param name path string true "Officer name"
// @Param half query string false "first (default) or second"
// @Success 200 {array} OfficerGame
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /officers/{name}/games [get]
func (gc *GameController) GetOfficerGames(c *gin.Context) {
	ctx := c.Request.Context()
	half := ParseHalf(c.Query("half"))

	off, err := gc.officerRepo.GetOfficerByName(ctx, c.Param("name"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch officer", err)
		return
	}
	if off == nil {
		responses.NotFound(c, "Officer")
		return
	}
	gameID := off.GameForHalf(half)
	if gameID == nil {
		c.JSON(http.StatusOK, []OfficerGame{})
		return
	}

	g, err := gc.repo.GetGameByID(ctx, *gameID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch game", err)
		return
	}
	if g == nil {
		responses.NotFound(c, "Game")
		return
	}

	results, err := gc.repo.ListResults(ctx, g.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch results", err)
		return
	}
	winnerByRound := make(map[int]uint, len(results))
	for _, r := range results {
		winnerByRound[r.Round] = r.WinningTeamID
	}

	byID, err := gc.teamRepo.GetTeamsByIDs(ctx, g.Matchups.TeamIDs())
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams", err)
		return
	}

	view := OfficerGame{ID: g.ID, Name: g.Name, Half: g.Half, Rounds: []RoundView{}}
	for i := range g.Matchups {
		m, ok := g.Matchups.Round(i + 1)
		if !ok {
			continue
		}
		rv := RoundView{Round: i + 1, Teams: teamRefs(m, byID)}
		if w, ok := winnerByRound[i+1]; ok {
			rv.WinnerID = &w
		}
		view.Rounds = append(view.Rounds, rv)
	}
	c.JSON(http.StatusOK, []OfficerGame{view})
}

// GetGameResults godoc
// @Summary Results of a game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {array} GameResult
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /games/{id}/results [get]
func (gc *GameController) GetGameResults(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid game ID")
		return
	}
	ctx := c.Request.Context()

	g, err := gc.repo.GetGameByID(ctx, uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch game", err)
		return
	}
	if g == nil {
		responses.NotFound(c, "Game")
		return
	}

	results, err := gc.repo.ListResults(ctx, g.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch results", err)
		return
	}
	if results == nil {
		results = []GameResult{}
	}
	c.JSON(http.StatusOK, results)
}

func teamRefs(m [2]uint, byID map[uint]team.Team) [2]TeamRef {
	return [2]TeamRef{
		{ID: m[0], Color: byID[m[0]].Color},
		{ID: m[1], Color: byID[m[1]].Color},
	}
}
