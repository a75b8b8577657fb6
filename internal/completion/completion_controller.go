package completion

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
)

type CompletionController struct {
	repo    CompletionRepository
	tracker *Tracker
}

func NewCompletionController(repo CompletionRepository, tracker *Tracker) *CompletionController {
	return &CompletionController{repo: repo, tracker: tracker}
}

// MarkComplete godoc
// @Summary Mark a team's officer challenge complete
// @Description Idempotent. The team's counter moves only the first time.
// @Tags completions
// @Accept json
// @Produce json
// @Param request body CompletionRequest true "Officer and team color"
// @Success 200 {object} responses.SuccessResponse{data=CompletionResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /completions/mark [post]
func (cc *CompletionController) MarkComplete(c *gin.Context) {
	cc.handle(c, cc.tracker.Mark, "Marked complete", "Already marked complete")
}

// UnmarkComplete godoc
// @Summary Unmark a team's officer challenge
// @Description Idempotent. The team's counter moves only when a mark is removed.
// @Tags completions
// @Accept json
// @Produce json
// @Param request body CompletionRequest true "Officer and team color"
// @Success 200 {object} responses.SuccessResponse{data=CompletionResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Router /completions/unmark [post]
func (cc *CompletionController) UnmarkComplete(c *gin.Context) {
	cc.handle(c, cc.tracker.Unmark, "Unmarked", "Already unmarked")
}

func (cc *CompletionController) handle(c *gin.Context, op func(ctx context.Context, officerName, teamColor string) (bool, error), changedMsg, sameMsg string) {
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	officerName := common.ResolveOfficer(c, req.OfficerName)

	changed, err := op(c.Request.Context(), officerName, req.TeamColor)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCompletion):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, officer.ErrOfficerNotFound):
			responses.NotFound(c, "Officer")
		case errors.Is(err, team.ErrTeamNotFound):
			responses.NotFound(c, "Team")
		default:
			responses.InternalServerError(c, "Failed to update completion", err)
		}
		return
	}

	msg := sameMsg
	if changed {
		msg = changedMsg
	}
	responses.SendSuccess(c, http.StatusOK, msg, CompletionResponse{
		OfficerName: officerName,
		TeamColor:   strings.TrimSpace(req.TeamColor),
		Changed:     changed,
	})
}

// GetOfficerCompletions godoc
// @Summary Teams an officer has marked complete
// @Tags completions
// @Produce json
// @Param name path string true "Officer name"
// @Success 200 {array} string
// @Failure 500 {object} responses.ErrorResponse
// @Router /officers/{name}/completions [get]
func (cc *CompletionController) GetOfficerCompletions(c *gin.Context) {
	colors, err := cc.repo.ColorsForOfficer(c.Request.Context(), c.Param("name"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch completions", err)
		return
	}
	c.JSON(http.StatusOK, colors)
}
