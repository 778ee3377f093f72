// Package store is the persistence layer for users and todos. Per-user
// isolation is enforced here, by filtered reads, not by callers filtering in
// memory.
package store

import (
	"errors"

	"tododesk/internal/domain"

	"gorm.io/gorm"
)

// Store runs all queries against the local sqlite database.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gdb.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// CreateUser inserts a new user row. Username uniqueness is enforced by the
// database unique index; a violation maps to domain.ErrUsernameTaken, so no
// separate existence check is needed (or wanted: two round trips would race).
func (s *Store) CreateUser(username, passwordHash string) (*domain.User, error) {
	user := &domain.User{Username: username, PasswordHash: passwordHash}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, &domain.StorageError{Op: "create user", Err: err}
	}
	return user, nil
}

// FindUserByUsername returns the user with the given username, or (nil, nil)
// when no such user exists.
func (s *Store) FindUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "find user", Err: err}
	}
	return &user, nil
}

// ListTodos returns the owner's todos newest-first. An owner with no todos
// gets an empty slice, never an error. The id tiebreak keeps the order
// deterministic for rows created in the same millisecond.
func (s *Store) ListTodos(ownerID uint) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0)
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&todos).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "list todos", Err: err}
	}
	return todos, nil
}

// InsertTodo creates a todo for ownerID with completed = false and returns
// the stored row, ids and timestamp filled in.
func (s *Store) InsertTodo(ownerID uint, text string) (*domain.Todo, error) {
	todo := &domain.Todo{OwnerID: ownerID, Text: text}
	if err := s.db.Create(todo).Error; err != nil {
		return nil, &domain.StorageError{Op: "insert todo", Err: err}
	}
	return todo, nil
}

// SetCompleted writes the completed flag for ownerID's todo with todoID.
// Scoping the write by owner keeps one session from mutating another user's
// rows by guessing ids. A missing or foreign id is a no-op success: zero rows
// affected is not an error.
func (s *Store) SetCompleted(ownerID, todoID uint, completed bool) error {
	err := s.db.Model(&domain.Todo{}).
		Where("id = ? AND owner_id = ?", todoID, ownerID).
		Update("completed", completed).Error
	if err != nil {
		return &domain.StorageError{Op: "set completed", Err: err}
	}
	return nil
}

// DeleteTodo removes ownerID's todo with todoID. A missing or foreign id is a
// no-op success.
func (s *Store) DeleteTodo(ownerID, todoID uint) error {
	err := s.db.
		Where("id = ? AND owner_id = ?", todoID, ownerID).
		Delete(&domain.Todo{}).Error
	if err != nil {
		return &domain.StorageError{Op: "delete todo", Err: err}
	}
	return nil
}

// DeleteUser removes a user; the schema's ON DELETE CASCADE takes the user's
// todos with it.
func (s *Store) DeleteUser(userID uint) error {
	if err := s.db.Delete(&domain.User{}, userID).Error; err != nil {
		return &domain.StorageError{Op: "delete user", Err: err}
	}
	return nil
}
