// team/model.go
package team

import (
	"errors"
	"time"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	// ErrLedgerUnderflow means a retraction would drive a total below zero,
	// i.e. it retracts points that were never applied.
	ErrLedgerUnderflow = errors.New("score ledger underflow")
)

// Team is a color-coded team. Score is derived from active game results and
// only moves through AddPoints; OfficerCounter mirrors officer completions.
type Team struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Color          string    `json:"color" gorm:"uniqueIndex;not null"`
	Score          int       `json:"score" gorm:"not null;default:0"`
	OfficerCounter int       `json:"officer_counter" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// LeaderboardEntry is the public standing of one team.
type LeaderboardEntry struct {
	Color string `json:"color"`
	Score int    `json:"score"`
}
