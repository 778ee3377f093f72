// Package todolist keeps the in-memory mirror of the current user's todos.
//
// Every mutation writes the store first and touches memory only after the
// store commit succeeds, so the mirror never shows state the store has not
// committed. A failed store write leaves the mirror untouched and returns the
// *domain.StorageError to the caller.
//
// Callers pass the session user into each operation; pointing the mirror at
// the user and reading or mutating it happen under one lock, so concurrent
// sessions cannot interleave a sync for one user with a read for another.
package todolist

import (
	"strings"
	"sync"

	"tododesk/internal/cache"
	"tododesk/internal/domain"
	"tododesk/internal/store"
)

// List is the view-state for exactly one owner at a time.
type List struct {
	mu    sync.Mutex
	store *store.Store
	cache *cache.Cache
	owner *domain.User
	items []domain.Todo
}

// New returns an empty List with no owner.
func New(st *store.Store, ca *cache.Cache) *List {
	return &List{store: st, cache: ca}
}

// syncLocked points the mirror at user. Changing owners discards the previous
// items wholesale before loading the new owner's; a nil user just clears the
// mirror. Syncing to the same owner again is a no-op.
func (l *List) syncLocked(user *domain.User) error {
	if user == nil {
		l.owner = nil
		l.items = nil
		return nil
	}
	if l.owner != nil && l.owner.ID == user.ID {
		return nil
	}
	l.owner = user
	l.items = nil
	return l.reloadLocked()
}

// Clear drops the owner and items, for logout. Cannot fail.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.owner = nil
	l.items = nil
}

// Owner returns the user the list is currently scoped to, or nil.
func (l *List) Owner() *domain.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}

// ItemsFor returns a copy of user's items, newest first, syncing the mirror
// first when the owner changed.
func (l *List) ItemsFor(user *domain.User) ([]domain.Todo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.syncLocked(user); err != nil {
		return nil, err
	}
	out := make([]domain.Todo, len(l.items))
	copy(out, l.items)
	return out, nil
}

// Reload replaces the items wholesale with the store's listing for the
// current owner.
func (l *List) Reload() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reloadLocked()
}

func (l *List) reloadLocked() error {
	if l.owner == nil {
		l.items = nil
		return nil
	}
	if todos, ok := l.cache.GetTodos(l.owner.ID); ok {
		l.items = todos
		return nil
	}
	todos, err := l.store.ListTodos(l.owner.ID)
	if err != nil {
		return err
	}
	l.items = todos
	l.cache.SetTodos(l.owner.ID, todos)
	return nil
}

// Add inserts a todo for user and prepends it, preserving newest-first order
// without a full reload. Text that is blank after trimming is ignored: no
// store write, no memory change, nil result. The text is stored as given,
// untrimmed.
func (l *List) Add(user *domain.User, text string) (*domain.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.syncLocked(user); err != nil {
		return nil, err
	}
	if l.owner == nil {
		return nil, nil
	}
	todo, err := l.store.InsertTodo(l.owner.ID, text)
	if err != nil {
		return nil, err
	}
	l.items = append([]domain.Todo{*todo}, l.items...)
	l.cache.InvalidateTodos(l.owner.ID)
	return todo, nil
}

// Toggle flips the completed flag for user's todo with id, store first, then
// mirrors the flip in memory. An id not present in memory still gets the
// store write; a foreign or missing id makes that write a no-op, so another
// user's rows stay untouched.
func (l *List) Toggle(user *domain.User, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.syncLocked(user); err != nil {
		return err
	}
	if l.owner == nil {
		return nil
	}
	idx := -1
	current := false
	for i := range l.items {
		if l.items[i].ID == id {
			idx = i
			current = l.items[i].Completed
			break
		}
	}
	if err := l.store.SetCompleted(l.owner.ID, id, !current); err != nil {
		return err
	}
	if idx >= 0 {
		l.items[idx].Completed = !current
	}
	l.cache.InvalidateTodos(l.owner.ID)
	return nil
}

// Remove deletes user's todo with id, store first, then drops it from
// memory. Foreign and missing ids are no-ops.
func (l *List) Remove(user *domain.User, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.syncLocked(user); err != nil {
		return err
	}
	if l.owner == nil {
		return nil
	}
	if err := l.store.DeleteTodo(l.owner.ID, id); err != nil {
		return err
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	l.cache.InvalidateTodos(l.owner.ID)
	return nil
}
