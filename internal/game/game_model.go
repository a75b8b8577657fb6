package game

import (
	"errors"
	"time"

	"github.com/DhavalSuthar-24/scoreboard/internal/models"
)

var (
	ErrInvalidReport    = errors.New("invalid result report")
	ErrGameNotFound     = errors.New("game not found")
	ErrTeamNotInMatchup = errors.New("team ids not valid for this round")
)

const (
	HalfFirst  = 1
	HalfSecond = 2
)

// Game is one station of the event. Matchups[i] is the pair of teams that
// meet in round i+1.
type Game struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"uniqueIndex;not null"`
	Half      int             `json:"half" gorm:"index;not null;default:1"`
	Matchups  models.Matchups `json:"matchups" gorm:"type:json"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// GameResult is the active outcome of one (game, round). There is at most
// one row per pair; corrections overwrite it.
type GameResult struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	GameID        uint      `json:"game_id" gorm:"uniqueIndex:idx_game_round;not null"`
	Round         int       `json:"round" gorm:"uniqueIndex:idx_game_round;not null"`
	WinningTeamID uint      `json:"winning_team_id" gorm:"not null"`
	LosingTeamID  uint      `json:"losing_team_id" gorm:"not null"`
	LogOfficerID  uint      `json:"log_officer_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ParseHalf maps the half query value to 1 or 2. Anything but "second"
// means the first half.
func ParseHalf(s string) int {
	if s == "second" || s == "2" {
		return HalfSecond
	}
	return HalfFirst
}

// --- DTOs ---

type ReportRequest struct {
	GameID        uint   `json:"game_id" binding:"required"`
	Round         int    `json:"round" binding:"required,min=1,max=5"`
	WinningTeamID uint   `json:"winning_team_id" binding:"required"`
	LosingTeamID  uint   `json:"losing_team_id" binding:"required,nefield=WinningTeamID"`
	OfficerName   string `json:"officer_name"`
}

type ReportResponse struct {
	Outcome Outcome    `json:"outcome"`
	Result  GameResult `json:"result"`
}

// TeamRef is a team as shown on a game button.
type TeamRef struct {
	ID    uint   `json:"id"`
	Color string `json:"color"`
}

// GameSummary is a game with its round-one teams.
type GameSummary struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Half  int        `json:"half"`
	Teams [2]TeamRef `json:"teams"`
}

type RoundView struct {
	Round    int        `json:"round"`
	Teams    [2]TeamRef `json:"teams"`
	WinnerID *uint      `json:"winner_id"`
}

// OfficerGame is the game an officer runs in a half, round by round.
type OfficerGame struct {
	ID     uint        `json:"id"`
	Name   string      `json:"name"`
	Half   int         `json:"half"`
	Rounds []RoundView `json:"rounds"`
}
