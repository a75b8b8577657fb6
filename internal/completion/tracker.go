package completion

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoreboard/internal/activity"
	"github.com/DhavalSuthar-24/scoreboard/internal/models"
	"github.com/DhavalSuthar-24/scoreboard/internal/notify"
	"github.com/DhavalSuthar-24/scoreboard/internal/officer"
	"github.com/DhavalSuthar-24/scoreboard/internal/team"
)

// Tracker keeps every team's officer counter equal to the number of
// officers who have marked that team complete.
type Tracker struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewTracker(db *gorm.DB, notifier notify.Notifier) *Tracker {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Tracker{db: db, notifier: notifier}
}

// Mark records the completion. It returns false without touching the
// counter when the pair was already marked.
func (t *Tracker) Mark(ctx context.Context, officerName, teamColor string) (bool, error) {
	officerName, teamColor = strings.TrimSpace(officerName), strings.TrimSpace(teamColor)
	if officerName == "" || teamColor == "" {
		return false, ErrInvalidCompletion
	}

	var changed bool
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		off, err := officer.NewOfficerRepository(tx).GetOfficerByName(ctx, officerName)
		if err != nil {
			return err
		}
		if off == nil {
			return fmt.Errorf("%q: %w", officerName, officer.ErrOfficerNotFound)
		}
		teams := team.NewTeamRepository(tx)
		tm, err := teams.GetTeamByColor(ctx, teamColor)
		if err != nil {
			return err
		}
		if tm == nil {
			return fmt.Errorf("team %s: %w", teamColor, team.ErrTeamNotFound)
		}

		inserted, err := NewCompletionRepository(tx).Insert(ctx, officerName, teamColor)
		if err != nil || !inserted {
			return err
		}
		if err := teams.AdjustOfficerCounter(ctx, teamColor, 1); err != nil {
			return err
		}
		changed = true
		return appendLog(ctx, tx, officerName, teamColor, activity.ActionIncrement)
	})
	if err != nil {
		return false, err
	}
	t.publish(ctx, changed)
	return changed, nil
}

// Unmark removes the completion. It returns false without touching the
// counter when there was nothing to remove.
func (t *Tracker) Unmark(ctx context.Context, officerName, teamColor string) (bool, error) {
	officerName, teamColor = strings.TrimSpace(officerName), strings.TrimSpace(teamColor)
	if officerName == "" || teamColor == "" {
		return false, ErrInvalidCompletion
	}

	var changed bool
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := NewCompletionRepository(tx).Delete(ctx, officerName, teamColor)
		if err != nil || !deleted {
			return err
		}
		if err := team.NewTeamRepository(tx).AdjustOfficerCounter(ctx, teamColor, -1); err != nil {
			return err
		}
		changed = true
		return appendLog(ctx, tx, officerName, teamColor, activity.ActionDecrement)
	})
	if err != nil {
		return false, err
	}
	t.publish(ctx, changed)
	return changed, nil
}

func (t *Tracker) publish(ctx context.Context, changed bool) {
	if !changed {
		return
	}
	if err := t.notifier.Publish(ctx, notify.TopicTeams, notify.TopicCompletions); err != nil {
		log.Printf("Warning: failed to publish completion change: %v", err)
	}
}

func appendLog(ctx context.Context, tx *gorm.DB, officerName, teamColor, action string) error {
	return activity.NewActivityRepository(tx).Append(ctx, &activity.LogEntry{
		Officer: officerName,
		Action:  action,
		Payload: models.JSONMap{"teamColor": teamColor},
	})
}
