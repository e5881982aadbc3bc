package services

import (
	"context"

	"gameportal/internal/logger"
	. "gameportal/internal/models"
	"gameportal/internal/repositories"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repositories.UserRepository
	db       *gorm.DB
	log      logger.Logger
}

func NewUserService(repos repositories.Repository, db *gorm.DB) *UserService {
	return &UserService{
		userRepo: repos.User,
		db:       db,
		log:      logger.New("userService"),
	}
}

func (s *UserService) RegisterPlayer(ctx context.Context, name string) (*User, error) {
	return s.register(ctx, name, NewPlayer)
}

func (s *UserService) RegisterCreator(ctx context.Context, name string) (*User, error) {
	return s.register(ctx, name, NewCreator)
}

func (s *UserService) register(
	ctx context.Context,
	name string,
	construct func(UserName) *User,
) (*User, error) {
	log := s.log.Function("register")

	userName, err := NewUserName(name)
	if err != nil {
		return nil, err
	}

	user := construct(userName)

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return nil, log.Err("failed to register user", err, "name", userName)
	}

	log.Info("registered user", "userID", user.ID, "type", user.Type)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int) (*User, error) {
	return s.userRepo.GetByID(ctx, s.db, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*User, error) {
	return s.userRepo.GetAllUsers(ctx, s.db)
}
