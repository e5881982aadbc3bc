package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReviewContent(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		expected  string
		wantError bool
	}{
		{
			name:     "valid content",
			value:    "Great game, highly recommended.",
			expected: "Great game, highly recommended.",
		},
		{
			name:     "trimmed before length check",
			value:    "  0123456789  ",
			expected: "0123456789",
		},
		{
			name:      "under 10 characters",
			value:     "too short",
			wantError: true,
		},
		{
			name:      "whitespace padding does not satisfy minimum",
			value:     "   short   ",
			wantError: true,
		},
		{
			name:     "exactly 2000 characters",
			value:    strings.Repeat("a", 2000),
			expected: strings.Repeat("a", 2000),
		},
		{
			name:      "over 2000 characters",
			value:     strings.Repeat("a", 2001),
			wantError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := NewReviewContent(tc.value)
			if tc.wantError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, content.String())
			}
		})
	}
}

func TestNewReviewRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		result, err := NewReviewRating(rating)
		assert.NoError(t, err)
		assert.Equal(t, rating, result.Int())
	}

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := NewReviewRating(rating)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	}
}
