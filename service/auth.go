package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/google/uuid"
)

const tokenExpiry = 24 * time.Hour

// Auth registers players and exchanges credentials for signed tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService wires the auth service to its user store and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repo and a tokenizer")
	}
	return &Auth{userRepo: userRepo, tokenizer: tokenizer}, nil
}

// Register creates a new player. Username and password rules live on the
// domain entity.
func (a *Auth) Register(username, password string) error {
	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	err = a.userRepo.Save(user)
	if err != nil {
		return err
	}

	return nil
}

// SignIn checks the credentials and returns the player with a signed access
// token. Lookup and password failures collapse into one message so the
// response does not reveal which usernames exist.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"playerID": user.ID.String(),
		"username": user.Username,
	}, tokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
