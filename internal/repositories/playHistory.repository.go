package repositories

import (
	"context"
	"time"

	"gameportal/internal/database"
	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PLAY_HISTORY_CACHE_PREFIX = "play_history"
	PLAY_HISTORY_CACHE_EXPIRY = 24 * time.Hour
)

type PlayHistoryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, playHistory *PlayHistory) error
	GetUserPlayHistory(ctx context.Context, tx *gorm.DB, userID int) ([]*PlayHistory, error)
	HasPlayed(ctx context.Context, tx *gorm.DB, userID int, gameID uuid.UUID) (bool, error)
	ClearUserHistoryCache(ctx context.Context, userID int) error
}

type playHistoryRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewPlayHistoryRepository(cache database.CacheClient) PlayHistoryRepository {
	return &playHistoryRepository{
		cache: cache,
		log:   logger.New("playHistoryRepository"),
	}
}

func (r *playHistoryRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	playHistory *PlayHistory,
) error {
	log := r.log.Function("Create")

	err := gorm.G[PlayHistory](tx).Create(ctx, playHistory)
	if err != nil {
		return log.Err(
			"failed to create play history",
			err,
			"userID", playHistory.UserID,
			"gameID", playHistory.GameID,
		)
	}

	r.clearUserPlayHistoryCache(ctx, playHistory.UserID)

	return nil
}

func (r *playHistoryRepository) GetUserPlayHistory(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
) ([]*PlayHistory, error) {
	log := r.log.Function("GetUserPlayHistory")

	var cached []*PlayHistory
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PLAY_HISTORY_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get play history from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	playHistory, err := gorm.G[*PlayHistory](tx).
		Where(PlayHistory{UserID: userID}).
		Order("played_at DESC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get user play history", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PLAY_HISTORY_CACHE_PREFIX).
		WithStruct(playHistory).
		WithTTL(PLAY_HISTORY_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set play history in cache", "userID", userID, "error", err)
	}

	return playHistory, nil
}

func (r *playHistoryRepository) HasPlayed(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
	gameID uuid.UUID,
) (bool, error) {
	log := r.log.Function("HasPlayed")

	var count int64
	result := tx.WithContext(ctx).
		Model(&PlayHistory{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count)
	if result.Error != nil {
		return false, log.Err(
			"failed to check play history",
			result.Error,
			"userID", userID,
			"gameID", gameID,
		)
	}

	return count > 0, nil
}

func (r *playHistoryRepository) clearUserPlayHistoryCache(ctx context.Context, userID int) {
	err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(PLAY_HISTORY_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear user play history cache", "userID", userID, "error", err)
	}
}

func (r *playHistoryRepository) ClearUserHistoryCache(ctx context.Context, userID int) error {
	r.clearUserPlayHistoryCache(ctx, userID)
	return nil
}
