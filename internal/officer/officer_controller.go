package officer

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoreboard/config"
	"github.com/DhavalSuthar-24/scoreboard/pkg/responses"
	"github.com/DhavalSuthar-24/scoreboard/pkg/token"
)

type OfficerController struct {
	repo   OfficerRepository
	config *config.Config
}

func NewOfficerController(repo OfficerRepository, cfg *config.Config) *OfficerController {
	return &OfficerController{repo: repo, config: cfg}
}

// Login godoc
// @Summary Officer login
// @Description Looks the officer up by username and returns their display name with a session token.
// @Tags officers
// @Accept json
// @Produce json
// @Param request body LoginRequest true "username"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /login [post]
func (oc *OfficerController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		responses.BadRequest(c, "Username is required")
		return
	}

	o, err := oc.repo.GetOfficerByUsername(c.Request.Context(), username)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up officer", err)
		return
	}
	if o == nil {
		responses.Unauthorized(c, "Invalid username")
		return
	}

	ttl := time.Duration(oc.config.Session.TTLMinutes) * time.Minute
	sessionToken, err := token.GenerateJWT(o.Name, oc.config.Session.Secret, ttl)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue session", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Name: o.Name, Token: sessionToken})
}
