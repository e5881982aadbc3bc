package models

import (
	"fmt"
	"strings"
)

type UserType string

const (
	UserTypePlayer  UserType = "player"
	UserTypeCreator UserType = "creator"
)

func ParseUserType(value string) (UserType, error) {
	switch UserType(value) {
	case UserTypePlayer:
		return UserTypePlayer, nil
	case UserTypeCreator:
		return UserTypeCreator, nil
	}
	return "", fmt.Errorf("%w: user type must be %q or %q, got %q",
		ErrValidation, UserTypePlayer, UserTypeCreator, value)
}

type UserName string

const maxUserNameLength = 100

func NewUserName(value string) (UserName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: user name cannot be empty", ErrValidation)
	}
	if len([]rune(trimmed)) > maxUserNameLength {
		return "", fmt.Errorf("%w: user name must not exceed %d characters",
			ErrValidation, maxUserNameLength)
	}
	return UserName(trimmed), nil
}

func (n UserName) String() string {
	return string(n)
}

// User covers both players and creators as a tagged variant. The id is
// assigned by storage on creation and is never client-supplied.
type User struct {
	BaseModel
	Name UserName `gorm:"type:text;not null"               json:"name"`
	Type UserType `gorm:"type:varchar(20);not null;index"  json:"type"`
}

func NewPlayer(name UserName) *User {
	return &User{Name: name, Type: UserTypePlayer}
}

func NewCreator(name UserName) *User {
	return &User{Name: name, Type: UserTypeCreator}
}

func (u *User) IsPlayer() bool {
	return u.Type == UserTypePlayer
}

func (u *User) IsCreator() bool {
	return u.Type == UserTypeCreator
}

// CanPublishGame reports whether this user may publish games. Only
// creators can.
func (u *User) CanPublishGame() bool {
	return u.Type == UserTypeCreator
}
