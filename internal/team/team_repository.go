package team

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *Team) error
	UpsertTeam(ctx context.Context, team *Team) error
	GetTeamByColor(ctx context.Context, color string) (*Team, error)
	GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]Team, error)
	ListTeams(ctx context.Context) ([]Team, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)

	// Ledger operations. Both are a single UPDATE so concurrent writers
	// never lose increments.
	AddPoints(ctx context.Context, teamID uint, delta int) error
	AdjustOfficerCounter(ctx context.Context, color string, delta int) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// UpsertTeam creates the team or leaves an existing team of the same color
// alone, filling team.ID either way. Scores are never reset by an upsert.
func (r *teamRepository) UpsertTeam(ctx context.Context, team *Team) error {
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "color"}},
		DoNothing: true,
	}).Create(team).Error; err != nil {
		return err
	}
	var stored Team
	if err := db.Where("color = ?", team.Color).First(&stored).Error; err != nil {
		return err
	}
	*team = stored
	return nil
}

func (r *teamRepository) GetTeamByColor(ctx context.Context, color string) (*Team, error) {
	var team Team
	if err := r.db.WithContext(ctx).Where("color = ?", color).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]Team, error) {
	byID := make(map[uint]Team, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var teams []Team
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		byID[t.ID] = t
	}
	return byID, nil
}

func (r *teamRepository) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := r.db.WithContext(ctx).Order("color asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.WithContext(ctx).Model(&Team{}).
		Select("color", "score").
		Order("score desc").Order("color asc").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *teamRepository) AddPoints(ctx context.Context, teamID uint, delta int) error {
	query := r.db.WithContext(ctx).Model(&Team{}).Where("id = ?", teamID)
	if delta < 0 {
		query = query.Where("score >= ?", -delta)
	}
	res := query.Update("score", gorm.Expr("score + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("add %d points to team %d: %w", delta, teamID, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missOrUnderflow(ctx, "id = ?", teamID, fmt.Sprintf("team %d", teamID))
	}
	return nil
}

func (r *teamRepository) AdjustOfficerCounter(ctx context.Context, color string, delta int) error {
	query := r.db.WithContext(ctx).Model(&Team{}).Where("color = ?", color)
	if delta < 0 {
		query = query.Where("officer_counter >= ?", -delta)
	}
	res := query.Update("officer_counter", gorm.Expr("officer_counter + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("adjust officer counter of team %s by %d: %w", color, delta, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missOrUnderflow(ctx, "color = ?", color, "team "+color)
	}
	return nil
}

// missOrUnderflow explains why a guarded update touched no row.
func (r *teamRepository) missOrUnderflow(ctx context.Context, where string, arg interface{}, label string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Team{}).Where(where, arg).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", label, ErrTeamNotFound)
	}
	return fmt.Errorf("%s: %w", label, ErrLedgerUnderflow)
}
