package store

import (
	"sync"

	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/google/uuid"
)

// MemoryUserStore is an in-memory UserStore used by tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// MemoryProfileStore is an in-memory ProfileStore used by tests. It shares a
// MemoryUserStore so owner joins and the cascade delete behave like the real
// store.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]models.Profile // keyed by owner user id
	users    *MemoryUserStore
}

func NewMemoryProfileStore(users *MemoryUserStore) *MemoryProfileStore {
	return &MemoryProfileStore{
		profiles: make(map[uuid.UUID]models.Profile),
		users:    users,
	}
}

func (s *MemoryProfileStore) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	s.attachOwner(&p)
	return &p, nil
}

func (s *MemoryProfileStore) FindAll() ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		s.attachOwner(&p)
		out = append(out, p)
	}
	return out, nil
}

func (s *MemoryProfileStore) Create(profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *MemoryProfileStore) Save(profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *MemoryProfileStore) DeleteWithUser(userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.profiles, userID)
	s.mu.Unlock()
	return s.users.Delete(userID)
}

func (s *MemoryProfileStore) attachOwner(p *models.Profile) {
	if owner, err := s.users.FindByID(p.UserID); err == nil {
		p.User = owner
	}
}
