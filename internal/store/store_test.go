package store

import (
	"fmt"
	"strings"
	"testing"

	"tododesk/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Todo{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	gdb := newTestDB(t)
	s := New(gdb)

	first, err := s.CreateUser("alice", "hash-1")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = s.CreateUser("alice", "hash-2")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	// The failed insert must not have left a row behind
	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateUserIsCaseSensitive(t *testing.T) {
	s := New(newTestDB(t))

	_, err := s.CreateUser("alice", "h")
	require.NoError(t, err)
	_, err = s.CreateUser("Alice", "h")
	require.NoError(t, err)
}

func TestFindUserByUsername(t *testing.T) {
	s := New(newTestDB(t))

	created, err := s.CreateUser("bob", "hash")
	require.NoError(t, err)

	found, err := s.FindUserByUsername("bob")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "hash", found.PasswordHash)

	// Absence is (nil, nil), not an error
	missing, err := s.FindUserByUsername("nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListTodosNewestFirst(t *testing.T) {
	s := New(newTestDB(t))
	user, err := s.CreateUser("carol", "h")
	require.NoError(t, err)

	var ids []uint
	for _, text := range []string{"first", "second", "third"} {
		todo, err := s.InsertTodo(user.ID, text)
		require.NoError(t, err)
		require.False(t, todo.Completed)
		ids = append(ids, todo.ID)
	}

	todos, err := s.ListTodos(user.ID)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	require.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{todos[0].ID, todos[1].ID, todos[2].ID})
	require.Equal(t, "third", todos[0].Text)
}

func TestListTodosEmptyOwner(t *testing.T) {
	s := New(newTestDB(t))

	todos, err := s.ListTodos(42)
	require.NoError(t, err)
	require.NotNil(t, todos)
	require.Empty(t, todos)
}

func TestListTodosPerUserIsolation(t *testing.T) {
	s := New(newTestDB(t))
	alice, err := s.CreateUser("alice", "h")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob", "h")
	require.NoError(t, err)

	_, err = s.InsertTodo(alice.ID, "alice todo")
	require.NoError(t, err)
	_, err = s.InsertTodo(bob.ID, "bob todo")
	require.NoError(t, err)

	todos, err := s.ListTodos(bob.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, "bob todo", todos[0].Text)
	require.Equal(t, bob.ID, todos[0].OwnerID)
}

func TestSetCompleted(t *testing.T) {
	s := New(newTestDB(t))
	user, err := s.CreateUser("dave", "h")
	require.NoError(t, err)
	todo, err := s.InsertTodo(user.ID, "task")
	require.NoError(t, err)

	require.NoError(t, s.SetCompleted(user.ID, todo.ID, true))
	todos, err := s.ListTodos(user.ID)
	require.NoError(t, err)
	require.True(t, todos[0].Completed)

	require.NoError(t, s.SetCompleted(user.ID, todo.ID, false))
	todos, err = s.ListTodos(user.ID)
	require.NoError(t, err)
	require.False(t, todos[0].Completed)
}

func TestSetCompletedMissingIDIsNoOp(t *testing.T) {
	s := New(newTestDB(t))
	user, err := s.CreateUser("dave", "h")
	require.NoError(t, err)
	require.NoError(t, s.SetCompleted(user.ID, 9999, true))
}

func TestSetCompletedForeignOwnerIsNoOp(t *testing.T) {
	s := New(newTestDB(t))
	alice, err := s.CreateUser("alice", "h")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob", "h")
	require.NoError(t, err)
	todo, err := s.InsertTodo(alice.ID, "alice task")
	require.NoError(t, err)

	// Writing with the wrong owner succeeds but touches no rows
	require.NoError(t, s.SetCompleted(bob.ID, todo.ID, true))
	todos, err := s.ListTodos(alice.ID)
	require.NoError(t, err)
	require.False(t, todos[0].Completed)
}

func TestDeleteTodo(t *testing.T) {
	s := New(newTestDB(t))
	user, err := s.CreateUser("erin", "h")
	require.NoError(t, err)
	todo, err := s.InsertTodo(user.ID, "doomed")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(user.ID, todo.ID))
	todos, err := s.ListTodos(user.ID)
	require.NoError(t, err)
	require.Empty(t, todos)

	// Deleting again is a no-op success
	require.NoError(t, s.DeleteTodo(user.ID, todo.ID))
}

func TestDeleteTodoForeignOwnerIsNoOp(t *testing.T) {
	s := New(newTestDB(t))
	alice, err := s.CreateUser("alice", "h")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob", "h")
	require.NoError(t, err)
	todo, err := s.InsertTodo(alice.ID, "alice task")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(bob.ID, todo.ID))
	todos, err := s.ListTodos(alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, todo.ID, todos[0].ID)
}

func TestDeleteUserCascadesTodos(t *testing.T) {
	gdb := newTestDB(t)
	s := New(gdb)
	user, err := s.CreateUser("frank", "h")
	require.NoError(t, err)
	_, err = s.InsertTodo(user.ID, "one")
	require.NoError(t, err)
	_, err = s.InsertTodo(user.ID, "two")
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(user.ID))

	var count int64
	require.NoError(t, gdb.Model(&domain.Todo{}).Count(&count).Error)
	require.Zero(t, count)
}
