// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MaxRounds is the number of rounds a game can schedule.
const MaxRounds = 5

// Matchup is the unordered pair of team ids competing in one round.
type Matchup [2]uint

// IsZero reports whether the round has no scheduled teams.
func (m Matchup) IsZero() bool {
	return m[0] == 0 && m[1] == 0
}

// Contains reports whether teamID is one side of the matchup.
func (m Matchup) Contains(teamID uint) bool {
	return teamID != 0 && (m[0] == teamID || m[1] == teamID)
}

// Is reports whether the matchup is exactly the pair {a, b}, in either order.
func (m Matchup) Is(a, b uint) bool {
	return a != b && m.Contains(a) && m.Contains(b)
}

// Matchups holds a game's rounds in order; index i is round i+1.
// A zero Matchup marks a round that is not played.
type Matchups []Matchup

// Round returns the matchup of a 1-based round.
func (ms Matchups) Round(round int) (Matchup, bool) {
	if round < 1 || round > len(ms) || round > MaxRounds {
		return Matchup{}, false
	}
	m := ms[round-1]
	if m.IsZero() {
		return Matchup{}, false
	}
	return m, true
}

// TeamIDs returns every distinct team id referenced by the scheduled rounds.
func (ms Matchups) TeamIDs() []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, m := range ms {
		if m.IsZero() {
			continue
		}
		for _, id := range m {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func (ms Matchups) Value() (driver.Value, error) {
	if ms == nil {
		ms = Matchups{}
	}
	b, err := json.Marshal(ms)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the rounds slice.
func (ms *Matchups) Scan(src interface{}) error {
	b, err := jsonBytes("Matchups", src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, ms)
}

// JSONMap is a free-form JSON object column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the map.
func (m *JSONMap) Scan(src interface{}) error {
	b, err := jsonBytes("JSONMap", src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, m)
}

// jsonBytes normalizes what drivers hand back for JSON columns: postgres
// returns []byte, sqlite returns string.
func jsonBytes(typ string, src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: expected []byte or string, got %T", typ, src)
	}
}
