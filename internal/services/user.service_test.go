package services

import (
	"context"
	"errors"
	"testing"

	"gameportal/internal/logger"
	. "gameportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func newUserServiceFixture() (*UserService, *fakeUserRepository) {
	userRepo := &fakeUserRepository{}
	service := &UserService{
		userRepo: userRepo,
		log:      logger.New("userServiceTest"),
	}
	return service, userRepo
}

func TestRegisterUsers(t *testing.T) {
	service, _ := newUserServiceFixture()

	player, err := service.RegisterPlayer(context.Background(), "Ada")
	assert.NoError(t, err)
	assert.True(t, player.IsPlayer())
	assert.Greater(t, player.ID, 0)

	creator, err := service.RegisterCreator(context.Background(), "Indie Works")
	assert.NoError(t, err)
	assert.True(t, creator.IsCreator())
	assert.NotEqual(t, player.ID, creator.ID)

	_, err = service.RegisterPlayer(context.Background(), "   ")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestGetUser(t *testing.T) {
	service, _ := newUserServiceFixture()

	registered, err := service.RegisterPlayer(context.Background(), "Ada")
	assert.NoError(t, err)

	found, err := service.GetUser(context.Background(), registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
	assert.Equal(t, UserName("Ada"), found.Name)

	_, err = service.GetUser(context.Background(), 99)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListUsers(t *testing.T) {
	service, _ := newUserServiceFixture()

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, users)

	_, err = service.RegisterPlayer(context.Background(), "Ada")
	assert.NoError(t, err)
	_, err = service.RegisterCreator(context.Background(), "Indie Works")
	assert.NoError(t, err)

	users, err = service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
