package store

import "github.com/iqmath/iqmath-server/pkg/model"

// UsersStore abstracts admin user storage operations
type UsersStore interface {
	// ByEmail retrieves a user by email, case-insensitively.
	// Returns ErrNotFound if no such user exists.
	ByEmail(email string) (*model.User, error)

	// Create inserts a new user.
	// Returns ErrDuplicateKey if the email is already taken.
	Create(user *model.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(email string, passwordHash string) error

	// Count returns the number of users
	Count() (int64, error)
}
