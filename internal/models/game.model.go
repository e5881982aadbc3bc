package models

import (
	"fmt"
	"net/url"
	"strings"
)

type GameTitle string

const maxGameTitleLength = 200

func NewGameTitle(value string) (GameTitle, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: game title cannot be empty", ErrValidation)
	}
	if len([]rune(trimmed)) > maxGameTitleLength {
		return "", fmt.Errorf("%w: game title must be %d characters or less",
			ErrValidation, maxGameTitleLength)
	}
	return GameTitle(trimmed), nil
}

func (t GameTitle) String() string {
	return string(t)
}

type GameURL string

func NewGameURL(value string) (GameURL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: game url cannot be empty", ErrValidation)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("%w: game url must be a valid absolute url, got %q",
			ErrValidation, trimmed)
	}
	return GameURL(trimmed), nil
}

func (u GameURL) String() string {
	return string(u)
}

// GameTags is a set of normalized lowercase tags. Order carries no
// meaning. Construction normalizes (trim, lowercase, drop empties) and
// rejects inputs that still collapse to duplicates, so caller mistakes
// surface instead of being silently deduplicated.
type GameTags []string

const (
	maxGameTags      = 10
	maxGameTagLength = 50
)

func NewGameTags(tags []string) (GameTags, error) {
	normalized := make(GameTags, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if len([]rune(tag)) > maxGameTagLength {
			return nil, fmt.Errorf("%w: tag %q exceeds maximum length of %d characters",
				ErrValidation, tag, maxGameTagLength)
		}
		normalized = append(normalized, tag)
	}

	if len(normalized) > maxGameTags {
		return nil, fmt.Errorf("%w: cannot have more than %d tags", ErrValidation, maxGameTags)
	}

	seen := make(map[string]struct{}, len(normalized))
	for _, tag := range normalized {
		if _, dup := seen[tag]; dup {
			return nil, fmt.Errorf("%w: duplicate tag %q is not allowed", ErrValidation, tag)
		}
		seen[tag] = struct{}{}
	}

	return normalized, nil
}

func (t GameTags) Has(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t GameTags) Count() int {
	return len(t)
}

// Game is the aggregate root for a published game and its reviews. The
// review list is owned exclusively by the aggregate; external code gets
// copies, never the live slice.
type Game struct {
	BaseUUIDModel
	Title     GameTitle `gorm:"type:text;not null"                            json:"title"`
	URL       GameURL   `gorm:"type:text;not null"                            json:"url"`
	Tags      GameTags  `gorm:"serializer:json;type:jsonb"                    json:"tags"`
	CreatorID int       `gorm:"not null;index"                                json:"creatorId"`
	Creator   *User     `gorm:"foreignKey:CreatorID"                          json:"creator,omitempty"`
	Reviews   []Review  `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"reviews"`
}

func NewGame(title GameTitle, gameURL GameURL, tags GameTags, creatorID int) *Game {
	return &Game{
		BaseUUIDModel: newBaseUUIDModel(),
		Title:         title,
		URL:           gameURL,
		Tags:          tags,
		CreatorID:     creatorID,
	}
}

func (g *Game) IsOwnedBy(userID int) bool {
	return g.CreatorID == userID
}

// AddReview appends a review from userID. Creators cannot review their
// own games, and a user can hold at most one review per game.
func (g *Game) AddReview(userID int, content ReviewContent, rating ReviewRating) (*Review, error) {
	if g.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: creators cannot review their own games", ErrBusinessRule)
	}

	for i := range g.Reviews {
		if g.Reviews[i].UserID == userID {
			return nil, fmt.Errorf("%w: user has already reviewed this game", ErrBusinessRule)
		}
	}

	review := newReview(g.ID, userID, content, rating)
	g.Reviews = append(g.Reviews, review)
	g.touch()

	return &g.Reviews[len(g.Reviews)-1], nil
}

// UpdateReview replaces the content and rating of the review userID
// already left on this game.
func (g *Game) UpdateReview(userID int, content ReviewContent, rating ReviewRating) error {
	for i := range g.Reviews {
		if g.Reviews[i].UserID == userID {
			g.Reviews[i].update(content, rating)
			g.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: review by user %d", ErrNotFound, userID)
}

// ReviewByUser returns a copy of the review left by userID, if any.
func (g *Game) ReviewByUser(userID int) (Review, bool) {
	for i := range g.Reviews {
		if g.Reviews[i].UserID == userID {
			return g.Reviews[i], true
		}
	}
	return Review{}, false
}

// AverageRating returns the arithmetic mean of all review ratings, or
// nil when there are none. "No ratings" is never conflated with a zero
// average.
func (g *Game) AverageRating() *float64 {
	if len(g.Reviews) == 0 {
		return nil
	}

	sum := 0
	for i := range g.Reviews {
		sum += int(g.Reviews[i].Rating)
	}

	average := float64(sum) / float64(len(g.Reviews))
	return &average
}

func (g *Game) ReviewCount() int {
	return len(g.Reviews)
}

// ReviewList returns a defensive copy of the review collection.
func (g *Game) ReviewList() []Review {
	reviews := make([]Review, len(g.Reviews))
	copy(reviews, g.Reviews)
	return reviews
}
