package services

import (
	"context"
	"time"

	"gameportal/internal/logger"
	. "gameportal/internal/models"
	"gameportal/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayHistoryService struct {
	playHistoryRepo repositories.PlayHistoryRepository
	gameRepo        repositories.GameRepository
	db              *gorm.DB
	log             logger.Logger
}

func NewPlayHistoryService(repos repositories.Repository, db *gorm.DB) *PlayHistoryService {
	return &PlayHistoryService{
		playHistoryRepo: repos.PlayHistory,
		gameRepo:        repos.Game,
		db:              db,
		log:             logger.New("playHistoryService"),
	}
}

// RecordPlay appends a play event for the user, stamped at the current
// time. The game must exist.
func (s *PlayHistoryService) RecordPlay(
	ctx context.Context,
	userID int,
	gameID uuid.UUID,
) (*PlayHistory, error) {
	log := s.log.Function("RecordPlay")

	if _, err := s.gameRepo.GetByID(ctx, s.db, gameID); err != nil {
		return nil, err
	}

	playHistory := NewPlayHistory(userID, gameID)

	if err := s.playHistoryRepo.Create(ctx, s.db, playHistory); err != nil {
		return nil, log.Err("failed to record play", err, "userID", userID, "gameID", gameID)
	}

	return playHistory, nil
}

// RecordPlayAt appends a play event with a caller-supplied timestamp,
// rejecting times in the future.
func (s *PlayHistoryService) RecordPlayAt(
	ctx context.Context,
	userID int,
	gameID uuid.UUID,
	playedAt time.Time,
) (*PlayHistory, error) {
	log := s.log.Function("RecordPlayAt")

	if _, err := s.gameRepo.GetByID(ctx, s.db, gameID); err != nil {
		return nil, err
	}

	playHistory, err := NewPlayHistoryAt(userID, gameID, playedAt)
	if err != nil {
		return nil, err
	}

	if err := s.playHistoryRepo.Create(ctx, s.db, playHistory); err != nil {
		return nil, log.Err("failed to record play", err, "userID", userID, "gameID", gameID)
	}

	return playHistory, nil
}

func (s *PlayHistoryService) GetUserPlayHistory(
	ctx context.Context,
	userID int,
) ([]*PlayHistory, error) {
	return s.playHistoryRepo.GetUserPlayHistory(ctx, s.db, userID)
}

func (s *PlayHistoryService) HasPlayed(
	ctx context.Context,
	userID int,
	gameID uuid.UUID,
) (bool, error) {
	return s.playHistoryRepo.HasPlayed(ctx, s.db, userID, gameID)
}

// CanReviewGame reports whether the user is eligible to review a game:
// they must have played it at least once.
func (s *PlayHistoryService) CanReviewGame(
	ctx context.Context,
	userID int,
	gameID uuid.UUID,
) (bool, error) {
	return s.HasPlayed(ctx, userID, gameID)
}
