package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/models"
)

const (
	ActionReport    = "report"
	ActionCorrect   = "correct"
	ActionIncrement = "increment"
	ActionDecrement = "decrement"

	DefaultLimit = 100
)

// LogEntry is one line of the officer activity log. Payload holds whatever
// the action needs to describe itself (round, team colors and so on).
type LogEntry struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Officer   string         `json:"officer" gorm:"index;not null"`
	Action    string         `json:"action" gorm:"not null"`
	Payload   models.JSONMap `json:"payload" gorm:"type:json"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

func (e *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
