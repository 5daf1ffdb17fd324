// Package store holds the in-memory collections behind the API. Every store
// owns its slice and id counter behind a sync.RWMutex so that id assignment
// and append stay atomic under parallel request handling.
package store

import (
	"sync"

	"tripbook/internal/domain"
)

type UserStore struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Add assigns the next id and appends the user. Email uniqueness is the
// caller's responsibility (the auth service checks it under its own flow).
func (s *UserStore) Add(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u.ID = s.nextID
	s.users = append(s.users, u)
	return u
}

func (s *UserStore) ByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *UserStore) ByID(id int64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
