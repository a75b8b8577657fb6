package completion

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository interface {
	// Insert reports whether a new row was written.
	Insert(ctx context.Context, officerName, teamColor string) (bool, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, officerName, teamColor string) (bool, error)
	ColorsForOfficer(ctx context.Context, officerName string) ([]string, error)
}

type completionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Insert(ctx context.Context, officerName, teamColor string) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "officer_name"}, {Name: "team_color"}},
		DoNothing: true,
	}).Create(&OfficerCompletion{OfficerName: officerName, TeamColor: teamColor})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *completionRepository) Delete(ctx context.Context, officerName, teamColor string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("officer_name = ? AND team_color = ?", officerName, teamColor).
		Delete(&OfficerCompletion{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *completionRepository) ColorsForOfficer(ctx context.Context, officerName string) ([]string, error) {
	colors := []string{}
	err := r.db.WithContext(ctx).Model(&OfficerCompletion{}).
		Where("officer_name = ?", officerName).
		Order("team_color asc").
		Pluck("team_color", &colors).Error
	if err != nil {
		return nil, err
	}
	return colors, nil
}
