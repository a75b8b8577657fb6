package game

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
)

func GameRoutes(router *gin.RouterGroup, db *gorm.DB, notifier notify.Notifier) {
	gameController := NewGameController(
		NewGameRepository(db),
		team.NewTeamRepository(db),
		officer.NewOfficerRepository(db),
		NewResultRecorder(db, notifier),
	)

	router.POST("/game-results", gameController.ReportResult)

	games := router.Group("/games")
	{
		games.GET("", gameController.GetGames)
		games.GET("/:id/results", gameController.GetGameResults)
	}

	router.GET("/officers/:name/games", gameController.GetOfficerGames)
}
