// Package auth turns (username, password) pairs into authenticated users.
package auth

import (
	"errors"
	"strings"

	"tododesk/internal/domain"
	"tododesk/internal/store"

	"github.com/sirupsen/logrus" // Logging library
)

// Service orchestrates registration and login against the store. Session
// establishment is the presentation layer's job, through the session adapter.
type Service struct {
	store *store.Store
}

// NewService returns an auth service over st.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Register validates credentials, hashes the password and creates the user.
// Duplicate usernames surface as domain.ErrUsernameTaken straight from the
// store's unique index.
func (s *Service) Register(username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("Username cannot be empty")
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user, err := s.store.CreateUser(username, hash)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")
	return user, nil
}

// Login authenticates username/password. Unknown username and wrong password
// return the same domain.ErrInvalidCredentials so callers cannot enumerate
// accounts.
func (s *Service) Login(username, password string) (*domain.User, error) {
	user, err := s.store.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
