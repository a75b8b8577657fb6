package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/config"
	"github.com/DhavalSuthar-24/scoreboard/internal/activity"
	"github.com/DhavalSuthar-24/scoreboard/internal/completion"
	"github.com/DhavalSuthar-24/scoreboard/internal/game"
	"github.com/DhavalSuthar-24/scoreboard/internal/middleware"
	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
)

// SetupRoutes builds the engine. Writers publish through notifier; feed
// answers the change polls.
func SetupRoutes(cfg *config.Config, db *gorm.DB, feed *notify.Feed, notifier notify.Notifier) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.App.FrontendURLs)))
	r.Use(middleware.RequestID())

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Officer Scoreboard</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Officer Scoreboard</h1>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": feed.Version()})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(middleware.OfficerContext(cfg.Session.Secret))
	officer.OfficerRoutes(api, db, cfg)
	team.TeamRoutes(api, db)
	game.GameRoutes(api, db, notifier)
	completion.CompletionRoutes(api, db, notifier)
	activity.ActivityRoutes(api, db, notifier)
	notify.NotifyRoutes(api, feed)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.OfficerHeader, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	return c
}
