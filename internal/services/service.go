package services

import (
	"gameportal/internal/database"
	"gameportal/internal/repositories"
)

type Service struct {
	Transaction               *TransactionService
	Scheduler                 *SchedulerService
	RecommendationCalculation *RecommendationCalculationService
	Recommendation            *RecommendationService
	Game                      *GameService
	PlayHistory               *PlayHistoryService
	User                      *UserService
}

func New(db database.DB, repos repositories.Repository) Service {
	transaction := NewTransactionService(db)
	calculation := NewRecommendationCalculationService()

	return Service{
		Transaction:               transaction,
		Scheduler:                 NewSchedulerService(),
		RecommendationCalculation: calculation,
		Recommendation:            NewRecommendationService(repos, calculation, transaction, db.SQL),
		Game:                      NewGameService(repos, db.SQL),
		PlayHistory:               NewPlayHistoryService(repos, db.SQL),
		User:                      NewUserService(repos, db.SQL),
	}
}
