package services

import (
	"context"
	"errors"
	"testing"

	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type gameFixture struct {
	service  *GameService
	userRepo *fakeUserRepository
	gameRepo *fakeGameRepository
}

func newGameFixture() *gameFixture {
	userRepo := &fakeUserRepository{}
	gameRepo := &fakeGameRepository{}

	service := &GameService{
		gameRepo: gameRepo,
		userRepo: userRepo,
		log:      logger.New("gameServiceTest"),
	}

	return &gameFixture{service: service, userRepo: userRepo, gameRepo: gameRepo}
}

func (f *gameFixture) addCreator(t *testing.T, name string) *User {
	t.Helper()

	userName, err := NewUserName(name)
	assert.NoError(t, err)
	creator := NewCreator(userName)
	assert.NoError(t, f.userRepo.Create(context.Background(), nil, creator))
	return creator
}

func (f *gameFixture) addPlayer(t *testing.T, name string) *User {
	t.Helper()

	userName, err := NewUserName(name)
	assert.NoError(t, err)
	player := NewPlayer(userName)
	assert.NoError(t, f.userRepo.Create(context.Background(), nil, player))
	return player
}

const validReview = "Really enjoyed this one, the pacing is excellent."

func TestPublishGame(t *testing.T) {
	t.Run("creator publishes a game", func(t *testing.T) {
		fixture := newGameFixture()
		creator := fixture.addCreator(t, "Indie Works")

		game, err := fixture.service.PublishGame(
			context.Background(),
			creator.ID,
			"Dungeon Depths",
			"https://games.example.com/dungeon-depths",
			[]string{"RPG", "Roguelike"},
		)
		assert.NoError(t, err)
		assert.Equal(t, "Dungeon Depths", game.Title.String())
		assert.Equal(t, GameTags{"rpg", "roguelike"}, game.Tags)
		assert.Equal(t, creator.ID, game.CreatorID)
		assert.Equal(t, 0, game.ReviewCount())
	})

	t.Run("player cannot publish", func(t *testing.T) {
		fixture := newGameFixture()
		player := fixture.addPlayer(t, "Ada")

		_, err := fixture.service.PublishGame(
			context.Background(),
			player.ID,
			"Dungeon Depths",
			"https://games.example.com/dungeon-depths",
			[]string{"rpg"},
		)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrBusinessRule))
	})

	t.Run("unknown creator", func(t *testing.T) {
		fixture := newGameFixture()

		_, err := fixture.service.PublishGame(
			context.Background(),
			99,
			"Dungeon Depths",
			"https://games.example.com/dungeon-depths",
			[]string{"rpg"},
		)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("invalid url is rejected before storage", func(t *testing.T) {
		fixture := newGameFixture()
		creator := fixture.addCreator(t, "Indie Works")

		_, err := fixture.service.PublishGame(
			context.Background(),
			creator.ID,
			"Dungeon Depths",
			"not-a-url",
			[]string{"rpg"},
		)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Empty(t, fixture.gameRepo.games)
	})
}

func TestGameServiceAddReview(t *testing.T) {
	fixture := newGameFixture()
	creator := fixture.addCreator(t, "Indie Works")
	player := fixture.addPlayer(t, "Ada")

	game, err := fixture.service.PublishGame(
		context.Background(),
		creator.ID,
		"Dungeon Depths",
		"https://games.example.com/dungeon-depths",
		[]string{"rpg"},
	)
	assert.NoError(t, err)

	t.Run("player reviews a game", func(t *testing.T) {
		updated, err := fixture.service.AddReview(
			context.Background(), game.ID, player.ID, validReview, 4)
		assert.NoError(t, err)
		assert.Equal(t, 1, updated.ReviewCount())

		average := updated.AverageRating()
		assert.NotNil(t, average)
		assert.InDelta(t, 4.0, *average, 0.0001)
	})

	t.Run("creator cannot review own game", func(t *testing.T) {
		_, err := fixture.service.AddReview(
			context.Background(), game.ID, creator.ID, validReview, 5)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrBusinessRule))
	})

	t.Run("second review by the same player fails", func(t *testing.T) {
		_, err := fixture.service.AddReview(
			context.Background(), game.ID, player.ID, validReview, 2)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrBusinessRule))
	})

	t.Run("invalid rating is rejected", func(t *testing.T) {
		_, err := fixture.service.AddReview(
			context.Background(), game.ID, player.ID, validReview, 6)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := fixture.service.AddReview(
			context.Background(), uuid.New(), player.ID, validReview, 4)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestGameServiceUpdateReview(t *testing.T) {
	fixture := newGameFixture()
	creator := fixture.addCreator(t, "Indie Works")
	player := fixture.addPlayer(t, "Ada")

	game, err := fixture.service.PublishGame(
		context.Background(),
		creator.ID,
		"Dungeon Depths",
		"https://games.example.com/dungeon-depths",
		[]string{"rpg"},
	)
	assert.NoError(t, err)

	t.Run("updating without a prior review fails", func(t *testing.T) {
		_, err := fixture.service.UpdateReview(
			context.Background(), game.ID, player.ID, validReview, 3)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("updates an existing review", func(t *testing.T) {
		_, err := fixture.service.AddReview(
			context.Background(), game.ID, player.ID, validReview, 2)
		assert.NoError(t, err)

		updated, err := fixture.service.UpdateReview(
			context.Background(), game.ID, player.ID,
			"Changed my mind after the balance patch, much better now.", 5)
		assert.NoError(t, err)

		review, found := updated.ReviewByUser(player.ID)
		assert.True(t, found)
		assert.Equal(t, 5, review.Rating.Int())
		assert.Equal(t, 1, updated.ReviewCount())
	})
}

func TestDeleteGame(t *testing.T) {
	fixture := newGameFixture()
	creator := fixture.addCreator(t, "Indie Works")
	other := fixture.addPlayer(t, "Ada")

	game, err := fixture.service.PublishGame(
		context.Background(),
		creator.ID,
		"Dungeon Depths",
		"https://games.example.com/dungeon-depths",
		[]string{"rpg"},
	)
	assert.NoError(t, err)

	t.Run("only the creator can delete", func(t *testing.T) {
		err := fixture.service.DeleteGame(context.Background(), game.ID, other.ID)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrBusinessRule))
		assert.Len(t, fixture.gameRepo.games, 1)
	})

	t.Run("creator deletes the game", func(t *testing.T) {
		err := fixture.service.DeleteGame(context.Background(), game.ID, creator.ID)
		assert.NoError(t, err)
		assert.Empty(t, fixture.gameRepo.games)
	})

	t.Run("deleting an unknown game fails", func(t *testing.T) {
		err := fixture.service.DeleteGame(context.Background(), uuid.New(), creator.ID)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
