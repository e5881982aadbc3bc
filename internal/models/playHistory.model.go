package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlayHistory records a single play event. It is a durable fact log:
// rows are appended and never edited or deleted by normal flows.
type PlayHistory struct {
	BaseUUIDModel
	UserID   int       `gorm:"not null;index"           json:"userId"`
	User     *User     `gorm:"foreignKey:UserID"        json:"user,omitempty"`
	GameID   uuid.UUID `gorm:"type:uuid;not null;index" json:"gameId"`
	Game     *Game     `gorm:"foreignKey:GameID"        json:"game,omitempty"`
	PlayedAt time.Time `gorm:"not null;index"           json:"playedAt"`
}

// NewPlayHistory stamps the play event at the current time.
func NewPlayHistory(userID int, gameID uuid.UUID) *PlayHistory {
	history := &PlayHistory{
		BaseUUIDModel: newBaseUUIDModel(),
		UserID:        userID,
		GameID:        gameID,
	}
	history.PlayedAt = history.CreatedAt
	return history
}

// NewPlayHistoryAt records a play event at a caller-supplied time,
// for example a session synced from an offline client.
func NewPlayHistoryAt(userID int, gameID uuid.UUID, playedAt time.Time) (*PlayHistory, error) {
	validated, err := NewPlayedAt(playedAt)
	if err != nil {
		return nil, err
	}

	history := &PlayHistory{
		BaseUUIDModel: newBaseUUIDModel(),
		UserID:        userID,
		GameID:        gameID,
		PlayedAt:      validated,
	}
	return history, nil
}

// NewPlayedAt validates a caller-supplied play timestamp. Play events
// cannot be recorded in the future.
func NewPlayedAt(value time.Time) (time.Time, error) {
	if value.IsZero() {
		return time.Time{}, fmt.Errorf("%w: played at must be a valid time", ErrValidation)
	}
	if value.After(time.Now()) {
		return time.Time{}, fmt.Errorf("%w: played at cannot be in the future", ErrValidation)
	}
	return value, nil
}

func (p *PlayHistory) IsPlayedBy(userID int) bool {
	return p.UserID == userID
}

func (p *PlayHistory) IsGamePlayed(gameID uuid.UUID) bool {
	return p.GameID == gameID
}
