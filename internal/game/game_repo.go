package game

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	CreateGame(ctx context.Context, g *Game) error
	UpsertGame(ctx context.Context, g *Game) error
	GetGameByID(ctx context.Context, id uint) (*Game, error)
	ListGamesByHalf(ctx context.Context, half int) ([]Game, error)

	// LockResult reads the result of a round and, on stores that support
	// it, holds a row lock until the transaction ends.
	LockResult(ctx context.Context, gameID uint, round int) (*GameResult, error)
	// InsertResultIfAbsent reports false when another result for the same
	// (game, round) already exists.
	InsertResultIfAbsent(ctx context.Context, r *GameResult) (bool, error)
	UpdateResult(ctx context.Context, r *GameResult) error
	ListResults(ctx context.Context, gameID uint) ([]GameResult, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateGame(ctx context.Context, g *Game) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// UpsertGame creates the game or replaces the half and matchups of the game
// with the same name.
func (r *gameRepository) UpsertGame(ctx context.Context, g *Game) error {
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"half", "matchups", "updated_at"}),
	}).Create(g).Error; err != nil {
		return err
	}
	var stored Game
	if err := db.Where("name = ?", g.Name).First(&stored).Error; err != nil {
		return err
	}
	*g = stored
	return nil
}

func (r *gameRepository) GetGameByID(ctx context.Context, id uint) (*Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) ListGamesByHalf(ctx context.Context, half int) ([]Game, error) {
	var games []Game
	if err := r.db.WithContext(ctx).Where("half = ?", half).Order("id asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) LockResult(ctx context.Context, gameID uint, round int) (*GameResult, error) {
	var res GameResult
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("game_id = ? AND round = ?", gameID, round).
		First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *gameRepository) InsertResultIfAbsent(ctx context.Context, res *GameResult) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "round"}},
		DoNothing: true,
	}).Create(res)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *gameRepository) UpdateResult(ctx context.Context, res *GameResult) error {
	tx := r.db.WithContext(ctx).Model(&GameResult{}).
		Where("id = ?", res.ID).
		Updates(map[string]interface{}{
			"winning_team_id": res.WinningTeamID,
			"losing_team_id":  res.LosingTeamID,
			"log_officer_id":  res.LogOfficerID,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gameRepository) ListResults(ctx context.Context, gameID uint) ([]GameResult, error) {
	var results []GameResult
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("round asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
