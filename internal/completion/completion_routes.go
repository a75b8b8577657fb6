package completion

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
)

func CompletionRoutes(router *gin.RouterGroup, db *gorm.DB, notifier notify.Notifier) {
	completionController := NewCompletionController(NewCompletionRepository(db), NewTracker(db, notifier))

	completions := router.Group("/completions")
	{
		completions.POST("/mark", completionController.MarkComplete)
		completions.POST("/unmark", completionController.UnmarkComplete)
	}

	router.GET("/officers/:name/completions", completionController.GetOfficerCompletions)
}
