package officer

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfficerRepository interface {
	CreateOfficer(ctx context.Context, o *Officer) error
	UpsertOfficer(ctx context.Context, o *Officer) error
	GetOfficerByName(ctx context.Context, name string) (*Officer, error)
	GetOfficerByUsername(ctx context.Context, username string) (*Officer, error)
}

type officerRepository struct {
	db *gorm.DB
}

func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db: db}
}

func (r *officerRepository) CreateOfficer(ctx context.Context, o *Officer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// UpsertOfficer inserts the officer or refreshes the name and game
// assignments of the one holding the same username.
func (r *officerRepository) UpsertOfficer(ctx context.Context, o *Officer) error {
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "first_half_game_id", "second_half_game_id", "updated_at"}),
	}).Create(o).Error; err != nil {
		return err
	}
	var stored Officer
	if err := db.Where("username = ?", o.Username).First(&stored).Error; err != nil {
		return err
	}
	*o = stored
	return nil
}

func (r *officerRepository) GetOfficerByName(ctx context.Context, name string) (*Officer, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *officerRepository) GetOfficerByUsername(ctx context.Context, username string) (*Officer, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *officerRepository) first(ctx context.Context, where string, arg interface{}) (*Officer, error) {
	var o Officer
	if err := r.db.WithContext(ctx).Where(where, arg).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
