package services

import (
	"context"
	"fmt"

	"gameportal/internal/logger"
	. "gameportal/internal/models"
	"gameportal/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService struct {
	gameRepo repositories.GameRepository
	userRepo repositories.UserRepository
	db       *gorm.DB
	log      logger.Logger
}

func NewGameService(repos repositories.Repository, db *gorm.DB) *GameService {
	return &GameService{
		gameRepo: repos.Game,
		userRepo: repos.User,
		db:       db,
		log:      logger.New("gameService"),
	}
}

// PublishGame validates the raw input, checks the publisher capability,
// and stores the new game with an empty review list.
func (s *GameService) PublishGame(
	ctx context.Context,
	creatorID int,
	title string,
	gameURL string,
	tags []string,
) (*Game, error) {
	log := s.log.Function("PublishGame")

	creator, err := s.userRepo.GetByID(ctx, s.db, creatorID)
	if err != nil {
		return nil, err
	}

	if !creator.CanPublishGame() {
		return nil, fmt.Errorf("%w: only creators can publish games", ErrBusinessRule)
	}

	gameTitle, err := NewGameTitle(title)
	if err != nil {
		return nil, err
	}

	url, err := NewGameURL(gameURL)
	if err != nil {
		return nil, err
	}

	gameTags, err := NewGameTags(tags)
	if err != nil {
		return nil, err
	}

	game := NewGame(gameTitle, url, gameTags, creatorID)

	if err := s.gameRepo.Create(ctx, s.db, game); err != nil {
		return nil, log.Err("failed to publish game", err, "creatorID", creatorID)
	}

	log.Info("published game", "gameID", game.ID, "creatorID", creatorID)
	return game, nil
}

func (s *GameService) GetGame(ctx context.Context, gameID uuid.UUID) (*Game, error) {
	return s.gameRepo.GetByID(ctx, s.db, gameID)
}

func (s *GameService) ListGames(ctx context.Context) ([]*Game, error) {
	return s.gameRepo.GetAll(ctx, s.db)
}

// AddReview appends a review to the game's aggregate and persists it.
// The aggregate enforces the self-review and duplicate-review rules.
func (s *GameService) AddReview(
	ctx context.Context,
	gameID uuid.UUID,
	userID int,
	content string,
	rating int,
) (*Game, error) {
	log := s.log.Function("AddReview")

	reviewContent, err := NewReviewContent(content)
	if err != nil {
		return nil, err
	}

	reviewRating, err := NewReviewRating(rating)
	if err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}

	if _, err := game.AddReview(userID, reviewContent, reviewRating); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, s.db, game); err != nil {
		return nil, log.Err("failed to save review", err, "gameID", gameID, "userID", userID)
	}

	return game, nil
}

// UpdateReview replaces the user's existing review on the game.
func (s *GameService) UpdateReview(
	ctx context.Context,
	gameID uuid.UUID,
	userID int,
	content string,
	rating int,
) (*Game, error) {
	log := s.log.Function("UpdateReview")

	reviewContent, err := NewReviewContent(content)
	if err != nil {
		return nil, err
	}

	reviewRating, err := NewReviewRating(rating)
	if err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}

	if err := game.UpdateReview(userID, reviewContent, reviewRating); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, s.db, game); err != nil {
		return nil, log.Err("failed to save review update", err, "gameID", gameID, "userID", userID)
	}

	return game, nil
}

// DeleteGame removes a game on the creator's request. Only the creator
// may delete it.
func (s *GameService) DeleteGame(ctx context.Context, gameID uuid.UUID, userID int) error {
	log := s.log.Function("DeleteGame")

	game, err := s.gameRepo.GetByID(ctx, s.db, gameID)
	if err != nil {
		return err
	}

	if !game.IsOwnedBy(userID) {
		return fmt.Errorf("%w: only the creator can delete a game", ErrBusinessRule)
	}

	if err := s.gameRepo.Delete(ctx, s.db, gameID, userID); err != nil {
		return log.Err("failed to delete game", err, "gameID", gameID, "userID", userID)
	}

	return nil
}
