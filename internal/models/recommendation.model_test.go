package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewScore(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		expected  string
		wantError bool
	}{
		{
			name:     "zero",
			value:    "0",
			expected: "0",
		},
		{
			name:     "one",
			value:    "1",
			expected: "1",
		},
		{
			name:     "rounded to four decimal places",
			value:    "0.123456",
			expected: "0.1235",
		},
		{
			name:     "two thirds",
			value:    "0.6666666666",
			expected: "0.6667",
		},
		{
			name:      "negative",
			value:     "-0.1",
			wantError: true,
		},
		{
			name:      "above one",
			value:     "1.0001",
			wantError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := decimal.NewFromString(tc.value)
			assert.NoError(t, err)

			score, err := NewScore(value)
			if tc.wantError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
				expected, err := decimal.NewFromString(tc.expected)
				assert.NoError(t, err)
				assert.True(t, score.Equal(expected))
			}
		})
	}
}

func TestScoreComparisons(t *testing.T) {
	high, err := NewScoreFromFloat(0.8)
	assert.NoError(t, err)
	low, err := NewScoreFromFloat(0.2)
	assert.NoError(t, err)

	assert.True(t, high.HigherThan(low))
	assert.False(t, low.HigherThan(high))
	assert.False(t, high.HigherThan(high))
	assert.True(t, high.Equals(high))
	assert.False(t, high.Equals(low))
	assert.True(t, ZeroScore().Equals(ZeroScore()))
}

func TestNewRecommendation(t *testing.T) {
	gameID := uuid.New()
	score, err := NewScoreFromFloat(0.75)
	assert.NoError(t, err)

	recommendation := NewRecommendation(5, gameID, score)

	assert.NotEqual(t, uuid.Nil, recommendation.ID)
	assert.Equal(t, 5, recommendation.UserID)
	assert.Equal(t, gameID, recommendation.GameID)
	assert.True(t, recommendation.Score.Equals(score))
	assert.Equal(t, recommendation.CreatedAt, recommendation.CalculatedAt)
}

func TestRecommendationUpdateScore(t *testing.T) {
	score, err := NewScoreFromFloat(0.5)
	assert.NoError(t, err)
	recommendation := NewRecommendation(5, uuid.New(), score)

	calculatedAt := recommendation.CalculatedAt

	newScore, err := NewScoreFromFloat(0.9)
	assert.NoError(t, err)
	recommendation.UpdateScore(newScore)

	assert.True(t, recommendation.Score.Equals(newScore))
	assert.Equal(t, calculatedAt, recommendation.CalculatedAt)
	assert.False(t, recommendation.UpdatedAt.Before(recommendation.CreatedAt))
}
