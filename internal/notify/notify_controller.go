package notify

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
)

type NotifyController struct {
	feed *Feed
}

func NewNotifyController(feed *Feed) *NotifyController {
	return &NotifyController{feed: feed}
}

// GetChanges godoc
// @Summary Poll for changes
// @Description Returns every change newer than `since`. Display clients refetch the topics named in the result.
// @Tags changes
// @Produce json
// @Param since query int false "last version the client has seen"
// @Success 200 {object} Snapshot
// @Failure 400 {object} responses.ErrorResponse
// @Router /changes [get]
func (nc *NotifyController) GetChanges(c *gin.Context) {
	var since int64
	if raw := c.Query("since"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			responses.BadRequest(c, "since must be a non-negative integer")
			return
		}
		since = v
	}
	c.JSON(http.StatusOK, nc.feed.Since(since))
}

// NotifyRoutes registers the polling endpoint.
func NotifyRoutes(router *gin.RouterGroup, feed *Feed) {
	nc := NewNotifyController(feed)
	router.GET("/changes", nc.GetChanges)
}
