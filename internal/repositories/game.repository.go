package repositories

import (
	"context"
	"errors"
	"fmt"

	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(ctx context.Context, tx *gorm.DB, game *Game) error
	GetByID(ctx context.Context, tx *gorm.DB, gameID uuid.UUID) (*Game, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Game, error)
	Save(ctx context.Context, tx *gorm.DB, game *Game) error
	Delete(ctx context.Context, tx *gorm.DB, gameID uuid.UUID, creatorID int) error
}

type gameRepository struct {
	log logger.Logger
}

func NewGameRepository() GameRepository {
	return &gameRepository{
		log: logger.New("gameRepository"),
	}
}

func (r *gameRepository) Create(ctx context.Context, tx *gorm.DB, game *Game) error {
	log := r.log.Function("Create")

	err := gorm.G[Game](tx).Create(ctx, game)
	if err != nil {
		return log.Err("failed to create game", err, "creatorID", game.CreatorID)
	}

	return nil
}

func (r *gameRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	gameID uuid.UUID,
) (*Game, error) {
	log := r.log.Function("GetByID")

	game, err := gorm.G[*Game](tx).
		Preload("Reviews", nil).
		Where("id = ?", gameID).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game %s", ErrNotFound, gameID)
		}
		return nil, log.Err("failed to get game", err, "gameID", gameID)
	}

	return game, nil
}

func (r *gameRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Game, error) {
	log := r.log.Function("GetAll")

	games, err := gorm.G[*Game](tx).
		Preload("Reviews", nil).
		Order("created_at DESC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get all games", err)
	}

	return games, nil
}

// Save persists the aggregate including any added or updated reviews.
func (r *gameRepository) Save(ctx context.Context, tx *gorm.DB, game *Game) error {
	log := r.log.Function("Save")

	result := tx.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(game)
	if result.Error != nil {
		return log.Err("failed to save game", result.Error, "gameID", game.ID)
	}

	return nil
}

func (r *gameRepository) Delete(
	ctx context.Context,
	tx *gorm.DB,
	gameID uuid.UUID,
	creatorID int,
) error {
	log := r.log.Function("Delete")

	rowsAffected, err := gorm.G[*Game](tx).
		Where("id = ? AND creator_id = ?", gameID, creatorID).
		Delete(ctx)
	if err != nil {
		return log.Err("failed to delete game", err, "gameID", gameID, "creatorID", creatorID)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: game %s owned by user %d", ErrNotFound, gameID, creatorID)
	}

	return nil
}
