package activity

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
)

func ActivityRoutes(router *gin.RouterGroup, db *gorm.DB, notifier notify.Notifier) {
	activityController := NewActivityController(NewActivityRepository(db), notifier)

	logs := router.Group("/logs")
	{
		logs.GET("", activityController.GetLogs)
		logs.POST("", activityController.CreateLog)
	}
}
