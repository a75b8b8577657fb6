// Package seed loads the event roster (teams, games and officers) from a
// YAML fixture into the database.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/game"
	"github.com/DhavalSuthar-24/scoreboard/internal/models"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
)

// Fixture is the seed file. Games reference teams by color and officers
// reference games by name.
type Fixture struct {
	Teams    []TeamFixture    `yaml:"teams"`
	Games    []GameFixture    `yaml:"games"`
	Officers []OfficerFixture `yaml:"officers"`
}

type TeamFixture struct {
	Color string `yaml:"color"`
}

type GameFixture struct {
	Name   string     `yaml:"name"`
	Half   int        `yaml:"half"`
	Rounds [][]string `yaml:"rounds"`
}

type OfficerFixture struct {
	Name           string `yaml:"name"`
	Username       string `yaml:"username"`
	FirstHalfGame  string `yaml:"first_half_game"`
	SecondHalfGame string `yaml:"second_half_game"`
}

// Summary counts what Apply wrote.
type Summary struct {
	Teams    int
	Games    int
	Officers int
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	colors := make(map[string]bool, len(f.Teams))
	for i, t := range f.Teams {
		if strings.TrimSpace(t.Color) == "" {
			return fmt.Errorf("teams[%d]: color is required", i)
		}
		colors[t.Color] = true
	}

	games := make(map[string]bool, len(f.Games))
	for i, g := range f.Games {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("games[%d]: name is required", i)
		}
		if g.Half != 0 && g.Half != game.HalfFirst && g.Half != game.HalfSecond {
			return fmt.Errorf("game %q: half must be 1 or 2", g.Name)
		}
		if len(g.Rounds) > models.MaxRounds {
			return fmt.Errorf("game %q: at most %d rounds", g.Name, models.MaxRounds)
		}
		for r, pair := range g.Rounds {
			if len(pair) == 0 {
				continue
			}
			if len(pair) != 2 || pair[0] == pair[1] {
				return fmt.Errorf("game %q round %d: need two different teams", g.Name, r+1)
			}
			for _, c := range pair {
				if !colors[c] {
					return fmt.Errorf("game %q round %d: unknown team %q", g.Name, r+1, c)
				}
			}
		}
		games[g.Name] = true
	}

	for i, o := range f.Officers {
		if strings.TrimSpace(o.Name) == "" || strings.TrimSpace(o.Username) == "" {
			return fmt.Errorf("officers[%d]: name and username are required", i)
		}
		for _, ref := range []string{o.FirstHalfGame, o.SecondHalfGame} {
			if ref != "" && !games[ref] {
				return fmt.Errorf("officer %q: unknown game %q", o.Name, ref)
			}
		}
	}
	return nil
}

// Apply upserts the fixture in one transaction. Existing scores, counters
// and results are left alone, so reapplying a fixture is safe.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) (Summary, error) {
	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teams := team.NewTeamRepository(tx)
		teamIDs := make(map[string]uint, len(f.Teams))
		for _, tf := range f.Teams {
			t := &team.Team{Color: tf.Color}
			if err := teams.UpsertTeam(ctx, t); err != nil {
				return fmt.Errorf("team %s: %w", tf.Color, err)
			}
			teamIDs[t.Color] = t.ID
			sum.Teams++
		}

		games := game.NewGameRepository(tx)
		gameIDs := make(map[string]uint, len(f.Games))
		for _, gf := range f.Games {
			g := &game.Game{Name: gf.Name, Half: gf.Half, Matchups: make(models.Matchups, len(gf.Rounds))}
			if g.Half == 0 {
				g.Half = game.HalfFirst
			}
			for r, pair := range gf.Rounds {
				if len(pair) == 2 {
					g.Matchups[r] = models.Matchup{teamIDs[pair[0]], teamIDs[pair[1]]}
				}
			}
			if err := games.UpsertGame(ctx, g); err != nil {
				return fmt.Errorf("game %s: %w", gf.Name, err)
			}
			gameIDs[g.Name] = g.ID
			sum.Games++
		}

		officers := officer.NewOfficerRepository(tx)
		for _, of := range f.Officers {
			o := &officer.Officer{
				Name:             of.Name,
				Username:         of.Username,
				FirstHalfGameID:  gameRef(gameIDs, of.FirstHalfGame),
				SecondHalfGameID: gameRef(gameIDs, of.SecondHalfGame),
			}
			if err := officers.UpsertOfficer(ctx, o); err != nil {
				return fmt.Errorf("officer %s: %w", of.Name, err)
			}
			sum.Officers++
		}
		return nil
	})
	return sum, err
}

func gameRef(ids map[string]uint, name string) *uint {
	if name == "" {
		return nil
	}
	id := ids[name]
	return &id
}
