package completion

import (
	"errors"
	"time"
)

var ErrInvalidCompletion = errors.New("officer name and team color are required")

// OfficerCompletion records that an officer finished a team's officer
// challenge. A pair is either present or absent; unmarking deletes the row.
type OfficerCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OfficerName string    `json:"officer_name" gorm:"uniqueIndex:idx_officer_team;not null"`
	TeamColor   string    `json:"team_color" gorm:"uniqueIndex:idx_officer_team;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

type CompletionRequest struct {
	OfficerName string `json:"officer_name"`
	TeamColor   string `json:"team_color" binding:"required"`
}

type CompletionResponse struct {
	OfficerName string `json:"officer_name"`
	TeamColor   string `json:"team_color"`
	Changed     bool   `json:"changed"`
}
