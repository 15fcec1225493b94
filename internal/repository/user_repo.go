package repository

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
	IsAdmin      bool
}

type UserRepository interface {
	GetByEmail(email string) (*User, error)
	CreateUser(email, fullName, phone, password string) error
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewUserRepository builds the in-memory user base. The demo admin account
// is seeded so the dashboard is reachable out of the box.
func NewUserRepository(adminEmail, adminPassword string) (UserRepository, error) {
	r := &userRepository{users: make(map[string]*User)}
	if adminEmail != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		r.users[strings.ToLower(adminEmail)] = &User{
			Email:        strings.ToLower(adminEmail),
			FullName:     "ParkEase Admin",
			PasswordHash: string(hash),
			IsAdmin:      true,
		}
	}
	return r, nil
}

func (r *userRepository) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *userRepository) CreateUser(email, fullName, phone, password string) error {
	key := strings.ToLower(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[key]; exists {
		return errors.New("account already exists")
	}
	r.users[key] = &User{
		Email:        key,
		FullName:     fullName,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	return nil
}
