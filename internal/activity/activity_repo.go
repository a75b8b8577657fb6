package activity

import (
	"context"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	Recent(ctx context.Context, limit int) ([]LogEntry, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, entry *LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Recent returns at most limit entries, newest first.
func (r *activityRepository) Recent(ctx context.Context, limit int) ([]LogEntry, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	var entries []LogEntry
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
