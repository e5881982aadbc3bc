package repositories

import (
	"context"
	"time"

	"gameportal/internal/database"
	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"gorm.io/gorm"
)

const (
	RECOMMENDATIONS_CACHE_PREFIX = "recommendations"
	RECOMMENDATIONS_CACHE_EXPIRY = 24 * time.Hour
)

type RecommendationRepository interface {
	GetUserRecommendations(
		ctx context.Context,
		tx *gorm.DB,
		userID int,
		limit int,
	) ([]*Recommendation, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID int) error
	CreateBatch(ctx context.Context, tx *gorm.DB, recommendations []*Recommendation) error
	ClearUserRecommendationCache(ctx context.Context, userID int) error
}

type recommendationRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewRecommendationRepository(cache database.CacheClient) RecommendationRepository {
	return &recommendationRepository{
		cache: cache,
		log:   logger.New("recommendationRepository"),
	}
}

// GetUserRecommendations returns the stored, already-ranked rows for a
// user, score descending. The cached entry holds the full stored set
// (itself capped by the generation limit); limit trims after the fetch.
func (r *recommendationRepository) GetUserRecommendations(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
	limit int,
) ([]*Recommendation, error) {
	log := r.log.Function("GetUserRecommendations")

	var cached []*Recommendation
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(RECOMMENDATIONS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get recommendations from cache", "userID", userID, "error", err)
	}

	if found {
		return trimToLimit(cached, limit), nil
	}

	recommendations, err := gorm.G[*Recommendation](tx).
		Preload("Game", nil).
		Where(Recommendation{UserID: userID}).
		Order("score DESC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get user recommendations", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(RECOMMENDATIONS_CACHE_PREFIX).
		WithStruct(recommendations).
		WithTTL(RECOMMENDATIONS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set recommendations in cache", "userID", userID, "error", err)
	}

	return trimToLimit(recommendations, limit), nil
}

func (r *recommendationRepository) DeleteByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
) error {
	log := r.log.Function("DeleteByUser")

	_, err := gorm.G[*Recommendation](tx).
		Where("user_id = ?", userID).
		Delete(ctx)
	if err != nil {
		return log.Err("failed to delete user recommendations", err, "userID", userID)
	}

	return nil
}

func (r *recommendationRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	recommendations []*Recommendation,
) error {
	log := r.log.Function("CreateBatch")

	if len(recommendations) == 0 {
		return nil
	}

	result := tx.WithContext(ctx).Create(&recommendations)
	if result.Error != nil {
		return log.Err(
			"failed to create recommendations",
			result.Error,
			"count", len(recommendations),
		)
	}

	return nil
}

func (r *recommendationRepository) ClearUserRecommendationCache(
	ctx context.Context,
	userID int,
) error {
	err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(RECOMMENDATIONS_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear user recommendation cache", "userID", userID, "error", err)
		return err
	}
	return nil
}

func trimToLimit(recommendations []*Recommendation, limit int) []*Recommendation {
	if limit <= 0 || len(recommendations) <= limit {
		return recommendations
	}
	return recommendations[:limit]
}
