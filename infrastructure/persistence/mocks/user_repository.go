package mocks

import (
	"context"
	"sync"

	"farmshop/domain/user"

	"github.com/google/uuid"
)

// UserRepository In-memory implementation of the user repository.
type UserRepository struct {
	mu          sync.RWMutex
	users       map[string]*user.User
	tokens      map[string]*user.Token
	addresses   map[string]*user.Address
	assignments []user.UserAddress
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:     make(map[string]*user.User),
		tokens:    make(map[string]*user.Token),
		addresses: make(map[string]*user.Address),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailExists
		}
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, exists := r.users[id]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *UserRepository) CreateToken(ctx context.Context, t *user.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *t
	r.tokens[t.Token] = &copied
	return nil
}

func (r *UserRepository) FindToken(ctx context.Context, token string) (*user.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tokens[token]
	if !exists {
		return nil, user.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *UserRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *UserRepository) CreateAddress(ctx context.Context, a *user.Address, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.addresses[a.ID] = &copied
	r.assignments = append(r.assignments, user.UserAddress{
		ID:        uuid.NewString(),
		UserID:    userID,
		AddressID: a.ID,
	})
	return nil
}

func (r *UserRepository) FindAddress(ctx context.Context, id string) (*user.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, exists := r.addresses[id]
	if !exists {
		return nil, user.ErrAddressNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *UserRepository) ListAddressesForUser(ctx context.Context, userID string) ([]user.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addresses := []user.Address{}
	for _, assignment := range r.assignments {
		if assignment.UserID != userID {
			continue
		}
		if a, ok := r.addresses[assignment.AddressID]; ok {
			addresses = append(addresses, *a)
		}
	}
	return addresses, nil
}

func (r *UserRepository) DeleteAddress(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.addresses[id]; !exists {
		return user.ErrAddressNotFound
	}
	delete(r.addresses, id)
	return nil
}

var _ user.Repository = (*UserRepository)(nil)
