package officer

import (
	"errors"
	"time"
)

var ErrOfficerNotFound = errors.New("officer not found")

// Officer is a scorer account, identified by name. Username is what the
// officer types at login; there is no password.
type Officer struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	Username         string    `json:"username" gorm:"uniqueIndex;not null"`
	FirstHalfGameID  *uint     `json:"first_half_game_id,omitempty"`
	SecondHalfGameID *uint     `json:"second_half_game_id,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// GameForHalf returns the game the officer runs in half 1 or 2.
func (o *Officer) GameForHalf(half int) *uint {
	if half == 2 {
		return o.SecondHalfGameID
	}
	return o.FirstHalfGameID
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
