package repositories

import (
	"gameportal/internal/database"
)

type Repository struct {
	User           UserRepository
	Game           GameRepository
	PlayHistory    PlayHistoryRepository
	Recommendation RecommendationRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:           NewUserRepository(db.Cache.User),
		Game:           NewGameRepository(),
		PlayHistory:    NewPlayHistoryRepository(db.Cache.User),
		Recommendation: NewRecommendationRepository(db.Cache.User),
	}
}
