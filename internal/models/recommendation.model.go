package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Score is a recommendation score in [0, 1], rounded to 4 decimal
// places. Equality is by value.
type Score struct {
	decimal.Decimal
}

var scoreUpperBound = decimal.NewFromInt(1)

func NewScore(value decimal.Decimal) (Score, error) {
	if value.IsNegative() || value.GreaterThan(scoreUpperBound) {
		return Score{}, fmt.Errorf("%w: score must be between 0 and 1, got %s",
			ErrValidation, value)
	}
	return Score{value.Round(4)}, nil
}

func NewScoreFromFloat(value float64) (Score, error) {
	return NewScore(decimal.NewFromFloat(value))
}

func ZeroScore() Score {
	return Score{decimal.Zero}
}

func (s Score) HigherThan(other Score) bool {
	return s.GreaterThan(other.Decimal)
}

func (s Score) Equals(other Score) bool {
	return s.Equal(other.Decimal)
}

// Recommendation holds how well a game currently ranks for a user. The
// full set for a user is replaced as a batch on recomputation.
type Recommendation struct {
	BaseUUIDModel
	UserID       int       `gorm:"not null;index:idx_recommendations_user_game,unique,composite:0"      json:"userId"`
	User         *User     `gorm:"foreignKey:UserID"                                                    json:"user,omitempty"`
	GameID       uuid.UUID `gorm:"type:uuid;not null;index:idx_recommendations_user_game,unique,composite:1" json:"gameId"`
	Game         *Game     `gorm:"foreignKey:GameID"                                                    json:"game,omitempty"`
	Score        Score     `gorm:"type:numeric(5,4);not null"                                           json:"score"`
	CalculatedAt time.Time `gorm:"not null"                                                             json:"calculatedAt"`
}

func NewRecommendation(userID int, gameID uuid.UUID, score Score) *Recommendation {
	recommendation := &Recommendation{
		BaseUUIDModel: newBaseUUIDModel(),
		UserID:        userID,
		GameID:        gameID,
		Score:         score,
	}
	recommendation.CalculatedAt = recommendation.CreatedAt
	return recommendation
}

// UpdateScore replaces the score and advances UpdatedAt. CalculatedAt
// marks when the scoring batch ran and deliberately stays untouched.
func (r *Recommendation) UpdateScore(score Score) {
	r.Score = score
	r.touch()
}
