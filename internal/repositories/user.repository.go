package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameportal/internal/database"
	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"gorm.io/gorm"
)

const (
	USER_CACHE_PREFIX = "user"
	USER_CACHE_EXPIRY = 7 * 24 * time.Hour
)

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *User) error
	GetByID(ctx context.Context, tx *gorm.DB, userID int) (*User, error)
	GetAllUsers(ctx context.Context, tx *gorm.DB) ([]*User, error)
}

type userRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewUserRepository(cache database.CacheClient) UserRepository {
	return &userRepository{
		cache: cache,
		log:   logger.New("userRepository"),
	}
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *User) error {
	log := r.log.Function("Create")

	err := gorm.G[User](tx).Create(ctx, user)
	if err != nil {
		return log.Err("failed to create user", err, "name", user.Name, "type", user.Type)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, userID int) (*User, error) {
	log := r.log.Function("GetByID")

	var cached User
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get user from cache", "userID", userID, "error", err)
	}

	if found {
		return &cached, nil
	}

	user, err := gorm.G[*User](tx).
		Where("id = ?", userID).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, log.Err("failed to get user", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set user in cache", "userID", userID, "error", err)
	}

	return user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context, tx *gorm.DB) ([]*User, error) {
	log := r.log.Function("GetAllUsers")

	users, err := gorm.G[*User](tx).
		Order("id ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get all users", err)
	}

	return users, nil
}
