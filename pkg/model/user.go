package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold. Authorization is currently binary
// (authenticated or not); the role is carried in session claims so a
// finer-grained gate can be added without reissuing tokens.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// MinPasswordLength applies to plaintext passwords at creation time.
const MinPasswordLength = 8

// User is an admin-panel account.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (u *User) GetID() string { return u.ID }

// Normalize folds the email to lowercase so uniqueness is
// case-insensitive, and defaults the role to editor.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	if u.Role == "" {
		u.Role = RoleEditor
	}
}

func (u *User) Validate() error {
	if err := required("email", u.Email); err != nil {
		return err
	}
	if err := required("name", u.Name); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	return oneOf("role", u.Role, RoleAdmin, RoleEditor)
}
