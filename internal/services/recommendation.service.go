package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gameportal/config"
	"gameportal/internal/logger"
	. "gameportal/internal/models"
	"gameportal/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerationOutcome reports how a single user's recommendation run
// ended. A skip is a normal "nothing to recommend yet" result, not an
// error.
type GenerationOutcome int

const (
	OutcomeGenerated GenerationOutcome = iota
	OutcomeSkipped
)

// BatchReport summarizes a generation run across all users.
type BatchReport struct {
	Total   int
	Success int
	Skipped int
	Errors  int
}

type RecommendationService struct {
	recommendationRepo repositories.RecommendationRepository
	playHistoryRepo    repositories.PlayHistoryRepository
	gameRepo           repositories.GameRepository
	userRepo           repositories.UserRepository
	calculationService *RecommendationCalculationService
	transaction        TransactionExecutor
	db                 *gorm.DB
	log                logger.Logger
}

func NewRecommendationService(
	repos repositories.Repository,
	calculationService *RecommendationCalculationService,
	transaction TransactionExecutor,
	db *gorm.DB,
) *RecommendationService {
	return &RecommendationService{
		recommendationRepo: repos.Recommendation,
		playHistoryRepo:    repos.PlayHistory,
		gameRepo:           repos.Game,
		userRepo:           repos.User,
		calculationService: calculationService,
		transaction:        transaction,
		db:                 db,
		log:                logger.New("recommendationService"),
	}
}

type scoredGame struct {
	gameID uuid.UUID
	score  Score
}

// GenerateForUser recomputes the stored recommendation set for one
// user: build a tag profile from every play event, score every
// unplayed game against that profile, keep the top limit entries, and
// replace the user's rows in a single transaction. Safe to re-run; the result
// fully supersedes prior state.
func (s *RecommendationService) GenerateForUser(
	ctx context.Context,
	userID int,
	limit int,
) (GenerationOutcome, error) {
	log := s.log.Function("GenerateForUser")

	if limit <= 0 {
		limit = config.DefaultRecommendationLimit
	}

	playHistories, err := s.playHistoryRepo.GetUserPlayHistory(ctx, s.db, userID)
	if err != nil {
		return OutcomeSkipped, log.Err("failed to get play history", err, "userID", userID)
	}

	if len(playHistories) == 0 {
		log.Debug("user has no play history, skipping", "userID", userID)
		return OutcomeSkipped, nil
	}

	playedGameIDs := make(map[uuid.UUID]struct{}, len(playHistories))
	for _, playHistory := range playHistories {
		playedGameIDs[playHistory.GameID] = struct{}{}
	}

	// Resolve each played game once, then contribute its tags once per
	// play event: a game played three times weighs its tags three times
	// in the profile. Ids that no longer resolve are tolerated.
	tagsByGameID := make(map[uuid.UUID]GameTags, len(playedGameIDs))
	for gameID := range playedGameIDs {
		game, err := s.gameRepo.GetByID(ctx, s.db, gameID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Warn("played game no longer exists, skipping", "gameID", gameID)
				continue
			}
			return OutcomeSkipped, log.Err("failed to get played game", err, "gameID", gameID)
		}
		tagsByGameID[game.ID] = game.Tags
	}

	playedGameTags := make([]GameTags, 0, len(playHistories))
	for _, playHistory := range playHistories {
		if tags, ok := tagsByGameID[playHistory.GameID]; ok {
			playedGameTags = append(playedGameTags, tags)
		}
	}

	allGames, err := s.gameRepo.GetAll(ctx, s.db)
	if err != nil {
		return OutcomeSkipped, log.Err("failed to get game catalog", err, "userID", userID)
	}

	scored := make([]scoredGame, 0, len(allGames))
	for _, game := range allGames {
		if _, played := playedGameIDs[game.ID]; played {
			continue
		}

		score, err := s.calculationService.CalculateScore(playedGameTags, game.Tags)
		if err != nil {
			return OutcomeSkipped, log.Err("failed to score candidate", err, "gameID", game.ID)
		}

		scored = append(scored, scoredGame{gameID: game.ID, score: score})
	}

	// Stable sort keeps catalog enumeration order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score.HigherThan(scored[j].score)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	recommendations := make([]*Recommendation, 0, len(scored))
	for _, candidate := range scored {
		recommendations = append(
			recommendations,
			NewRecommendation(userID, candidate.gameID, candidate.score),
		)
	}

	// Delete and insert run as one atomic unit so a crash in between
	// cannot leave the user without recommendations.
	err = s.transaction.Execute(ctx, func(txCtx context.Context, tx *gorm.DB) error {
		if err := s.recommendationRepo.DeleteByUser(txCtx, tx, userID); err != nil {
			return err
		}
		return s.recommendationRepo.CreateBatch(txCtx, tx, recommendations)
	})
	if err != nil {
		return OutcomeSkipped, log.Err("failed to replace recommendations", err, "userID", userID)
	}

	if err := s.recommendationRepo.ClearUserRecommendationCache(ctx, userID); err != nil {
		log.Warn("failed to clear recommendation cache", "userID", userID, "error", err)
	}

	log.Info("generated recommendations", "userID", userID, "count", len(recommendations))
	return OutcomeGenerated, nil
}

// GenerateForAllUsers runs the per-user workflow across every user.
// Each user is an independent unit of work: a failure is counted and
// logged but never aborts the rest of the batch.
func (s *RecommendationService) GenerateForAllUsers(ctx context.Context) (BatchReport, error) {
	log := s.log.Function("GenerateForAllUsers")

	users, err := s.userRepo.GetAllUsers(ctx, s.db)
	if err != nil {
		return BatchReport{}, log.Err("failed to get all users", err)
	}

	report := BatchReport{Total: len(users)}
	limit := config.GetConfig().RecommendationLimit

	for _, user := range users {
		outcome, err := s.generateForUserRecovered(ctx, user.ID, limit)
		if err != nil {
			log.Warn("failed to generate recommendations for user", "userID", user.ID, "error", err)
			report.Errors++
			continue
		}

		if outcome == OutcomeSkipped {
			report.Skipped++
		} else {
			report.Success++
		}
	}

	log.Info(
		"completed recommendation generation",
		"totalUsers", report.Total,
		"successful", report.Success,
		"skipped", report.Skipped,
		"errors", report.Errors,
	)

	return report, nil
}

// generateForUserRecovered converts a panic in one user's run into an
// error so the batch driver can keep going.
func (s *RecommendationService) generateForUserRecovered(
	ctx context.Context,
	userID int,
	limit int,
) (outcome GenerationOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomeSkipped
			err = fmt.Errorf("panic while generating recommendations: %v", r)
		}
	}()

	return s.GenerateForUser(ctx, userID, limit)
}

// GetRecommendations fetches stored, pre-ranked rows. No scoring runs
// on the read path.
func (s *RecommendationService) GetRecommendations(
	ctx context.Context,
	userID int,
	limit int,
) ([]*Recommendation, error) {
	log := s.log.Function("GetRecommendations")

	recommendations, err := s.recommendationRepo.GetUserRecommendations(ctx, s.db, userID, limit)
	if err != nil {
		return nil, log.Err("failed to get recommendations", err, "userID", userID)
	}

	return recommendations, nil
}
