package game

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/activity"
	"github.com/DhavalSuthar-24/scoreboard/internal/models"
	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
)

// Points credited for one round.
const (
	WinPoints  = 2
	LossPoints = 1
)

type Outcome string

const (
	OutcomeRecorded  Outcome = "recorded"
	OutcomeCorrected Outcome = "corrected"
	OutcomeUnchanged Outcome = "unchanged"
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeRecorded:
		return "Result recorded"
	case OutcomeCorrected:
		return "Result corrected"
	default:
		return "No change"
	}
}

type ReportInput struct {
	GameID        uint
	Round         int
	WinningTeamID uint
	LosingTeamID  uint
	OfficerName   string
}

func (in ReportInput) validate() error {
	switch {
	case in.GameID == 0 || in.WinningTeamID == 0 || in.LosingTeamID == 0:
		return fmt.Errorf("%w: game and team ids are required", ErrInvalidReport)
	case in.WinningTeamID == in.LosingTeamID:
		return fmt.Errorf("%w: winner and loser must differ", ErrInvalidReport)
	case in.Round < 1 || in.Round > models.MaxRounds:
		return fmt.Errorf("%w: round must be between 1 and %d", ErrInvalidReport, models.MaxRounds)
	case in.OfficerName == "":
		return fmt.Errorf("%w: officer name is required", ErrInvalidReport)
	}
	return nil
}

type ReportOutcome struct {
	Outcome Outcome
	Result  GameResult
}

// ResultRecorder keeps team scores equal to the sum of the active game
// results: +2 for every round won and +1 for every round lost.
type ResultRecorder struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewResultRecorder(db *gorm.DB, notifier notify.Notifier) *ResultRecorder {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &ResultRecorder{db: db, notifier: notifier}
}

// Report records the outcome of a round, correcting any earlier outcome.
// Ledger moves, the result row and the activity entry commit together.
func (rr *ResultRecorder) Report(ctx context.Context, in ReportInput) (*ReportOutcome, error) {
	in.OfficerName = strings.TrimSpace(in.OfficerName)
	if err := in.validate(); err != nil {
		return nil, err
	}

	var out ReportOutcome
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		games := NewGameRepository(tx)
		teams := team.NewTeamRepository(tx)

		g, err := games.GetGameByID(ctx, in.GameID)
		if err != nil {
			return err
		}
		if g == nil {
			return fmt.Errorf("game %d: %w", in.GameID, ErrGameNotFound)
		}
		matchup, ok := g.Matchups.Round(in.Round)
		if !ok || !matchup.Is(in.WinningTeamID, in.LosingTeamID) {
			return fmt.Errorf("game %d round %d: %w", in.GameID, in.Round, ErrTeamNotInMatchup)
		}

		off, err := officer.NewOfficerRepository(tx).GetOfficerByName(ctx, in.OfficerName)
		if err != nil {
			return err
		}
		if off == nil {
			return fmt.Errorf("%q: %w", in.OfficerName, officer.ErrOfficerNotFound)
		}

		existing, err := games.LockResult(ctx, in.GameID, in.Round)
		if err != nil {
			return err
		}
		if existing == nil {
			res := GameResult{
				GameID:        in.GameID,
				Round:         in.Round,
				WinningTeamID: in.WinningTeamID,
				LosingTeamID:  in.LosingTeamID,
				LogOfficerID:  off.ID,
			}
			inserted, err := games.InsertResultIfAbsent(ctx, &res)
			if err != nil {
				return err
			}
			if inserted {
				if err := (ledgerDelta{}).credit(in.WinningTeamID, in.LosingTeamID, 1).apply(ctx, teams); err != nil {
					return err
				}
				out = ReportOutcome{Outcome: OutcomeRecorded, Result: res}
				return appendLog(ctx, tx, teams, g, in, activity.ActionReport)
			}
			// A concurrent report inserted first; treat ours as a correction.
			existing, err = games.LockResult(ctx, in.GameID, in.Round)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("result for game %d round %d lost after conflicting insert", in.GameID, in.Round)
			}
		}

		if existing.WinningTeamID == in.WinningTeamID && existing.LosingTeamID == in.LosingTeamID {
			out = ReportOutcome{Outcome: OutcomeUnchanged, Result: *existing}
			return nil
		}

		delta := ledgerDelta{}.
			credit(existing.WinningTeamID, existing.LosingTeamID, -1).
			credit(in.WinningTeamID, in.LosingTeamID, 1)
		if err := delta.apply(ctx, teams); err != nil {
			return err
		}
		existing.WinningTeamID = in.WinningTeamID
		existing.LosingTeamID = in.LosingTeamID
		existing.LogOfficerID = off.ID
		if err := games.UpdateResult(ctx, existing); err != nil {
			return err
		}
		out = ReportOutcome{Outcome: OutcomeCorrected, Result: *existing}
		return appendLog(ctx, tx, teams, g, in, activity.ActionCorrect)
	})
	if err != nil {
		return nil, err
	}

	if out.Outcome != OutcomeUnchanged {
		if err := rr.notifier.Publish(ctx, notify.TopicTeams, notify.TopicGameResults); err != nil {
			log.Printf("Warning: failed to publish result change for game %d round %d: %v", in.GameID, in.Round, err)
		}
	}
	return &out, nil
}

// ledgerDelta is the net score change per team id for one report.
type ledgerDelta map[uint]int

// credit adds (sign=1) or retracts (sign=-1) the points of one round.
func (d ledgerDelta) credit(winnerID, loserID uint, sign int) ledgerDelta {
	d[winnerID] += sign * WinPoints
	d[loserID] += sign * LossPoints
	return d
}

// apply writes the non-zero deltas in ascending team id order so concurrent
// reports lock team rows in the same sequence.
func (d ledgerDelta) apply(ctx context.Context, teams team.TeamRepository) error {
	ids := make([]uint, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if d[id] == 0 {
			continue
		}
		if err := teams.AddPoints(ctx, id, d[id]); err != nil {
			return err
		}
	}
	return nil
}

func appendLog(ctx context.Context, tx *gorm.DB, teams team.TeamRepository, g *Game, in ReportInput, action string) error {
	byID, err := teams.GetTeamsByIDs(ctx, []uint{in.WinningTeamID, in.LosingTeamID})
	if err != nil {
		return err
	}
	return activity.NewActivityRepository(tx).Append(ctx, &activity.LogEntry{
		Officer: in.OfficerName,
		Action:  action,
		Payload: models.JSONMap{
			"round":       in.Round,
			"gameName":    g.Name,
			"winningTeam": byID[in.WinningTeamID].Color,
			"losingTeam":  byID[in.LosingTeamID].Color,
		},
	})
}
