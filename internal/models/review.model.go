package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ReviewContent string

const (
	minReviewContentLength = 10
	maxReviewContentLength = 2000
)

func NewReviewContent(value string) (ReviewContent, error) {
	trimmed := strings.TrimSpace(value)
	length := len([]rune(trimmed))
	if length < minReviewContentLength {
		return "", fmt.Errorf("%w: review content must be at least %d characters",
			ErrValidation, minReviewContentLength)
	}
	if length > maxReviewContentLength {
		return "", fmt.Errorf("%w: review content must be %d characters or less",
			ErrValidation, maxReviewContentLength)
	}
	return ReviewContent(trimmed), nil
}

func (c ReviewContent) String() string {
	return string(c)
}

type ReviewRating int

const (
	minReviewRating = 1
	maxReviewRating = 5
)

func NewReviewRating(value int) (ReviewRating, error) {
	if value < minReviewRating || value > maxReviewRating {
		return 0, fmt.Errorf("%w: rating must be between %d and %d, got %d",
			ErrValidation, minReviewRating, maxReviewRating, value)
	}
	return ReviewRating(value), nil
}

func (r ReviewRating) Int() int {
	return int(r)
}

// Review lives inside exactly one Game's review list and is never
// persisted independently of its game.
type Review struct {
	BaseUUIDModel
	GameID  uuid.UUID     `gorm:"type:uuid;not null;index:idx_reviews_game_user,unique,composite:0" json:"gameId"`
	UserID  int           `gorm:"not null;index:idx_reviews_game_user,unique,composite:1"           json:"userId"`
	Content ReviewContent `gorm:"type:text;not null"                                                json:"content"`
	Rating  ReviewRating  `gorm:"type:int;not null"                                                 json:"rating"`
}

func newReview(gameID uuid.UUID, userID int, content ReviewContent, rating ReviewRating) Review {
	return Review{
		BaseUUIDModel: newBaseUUIDModel(),
		GameID:        gameID,
		UserID:        userID,
		Content:       content,
		Rating:        rating,
	}
}

func (r *Review) update(content ReviewContent, rating ReviewRating) {
	r.Content = content
	r.Rating = rating
	r.touch()
}

func (r *Review) IsOwnedBy(userID int) bool {
	return r.UserID == userID
}
