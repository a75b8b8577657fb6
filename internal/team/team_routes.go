package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	teamController := NewTeamController(NewTeamRepository(db))

	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/leaderboard", teamController.GetLeaderboard)
}
