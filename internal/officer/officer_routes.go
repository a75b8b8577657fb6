package officer

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/config"
)

// OfficerRoutes registers login.
func OfficerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	officerController := NewOfficerController(NewOfficerRepository(db), appConfig)

	router.POST("/login", officerController.Login)
}
