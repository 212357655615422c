package gorm

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// ByEmail retrieves a user by email, case-insensitively.
func (s *UsersStore) ByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// Create normalizes, validates and inserts a user.
func (s *UsersStore) Create(user *model.User) error {
	user.Normalize()
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.db.Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash for a user.
func (s *UsersStore) UpdatePassword(email string, passwordHash string) error {
	tx := s.db.Model(&model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Count returns the number of users
func (s *UsersStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
