package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors carry the exact user-facing messages. Login keeps a single
// message for both unknown username and wrong password.
var (
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

// StorageError wraps a failure of the underlying database engine. Callers
// that receive one must leave in-memory state unchanged.
type StorageError struct {
	Op  string // Operation that failed, e.g. "insert todo"
	Err error  // Underlying driver error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// SessionError wraps a failure of the session mechanism. Logout swallows
// these; establishing a session does not.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session: %v", e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
