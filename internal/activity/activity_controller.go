package activity

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
)

type ActivityController struct {
	repo     ActivityRepository
	notifier notify.Notifier
}

func NewActivityController(repo ActivityRepository, notifier notify.Notifier) *ActivityController {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &ActivityController{repo: repo, notifier: notifier}
}

// GetLogs godoc
// @Summary Recent activity
// @Description Newest entries first. limit defaults to and is capped at 100.
// @Tags logs
// @Produce json
// @Param limit query int false "maximum entries"
// @Success 200 {array} LogEntry
// @Failure 400 {object} responses.ErrorResponse
// @Router /logs [get]
func (ac *ActivityController) GetLogs(c *gin.Context) {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			responses.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := ac.repo.Recent(c.Request.Context(), limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch logs", err)
		return
	}
	if entries == nil {
		entries = []LogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateLog godoc
// @Summary Append a log entry
// @Description officer and action are required; every other key is stored as the payload.
// @Tags logs
// @Accept json
// @Produce json
// @Param entry body object true "officer, action and payload keys"
// @Success 201 {object} LogEntry
// @Failure 400 {object} responses.ErrorResponse
// @Router /logs [post]
func (ac *ActivityController) CreateLog(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		responses.ValidationError(c, err)
		return
	}

	officer, _ := body["officer"].(string)
	action, _ := body["action"].(string)
	officer = common.ResolveOfficer(c, officer)
	action = strings.TrimSpace(action)
	if officer == "" || action == "" {
		responses.BadRequest(c, "officer and action are required")
		return
	}
	delete(body, "officer")
	delete(body, "action")

	entry := &LogEntry{Officer: officer, Action: action, Payload: body}
	if err := ac.repo.Append(c.Request.Context(), entry); err != nil {
		responses.InternalServerError(c, "Failed to append log", err)
		return
	}

	if err := ac.notifier.Publish(c.Request.Context(), notify.TopicLogs); err != nil {
		log.Printf("Warning: failed to publish log change: %v", err)
	}
	c.JSON(http.StatusCreated, entry)
}
