package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment purposes.
const (
	PurposeStudent   = "student"
	PurposeCollege   = "college"
	PurposeCorporate = "corporate"
)

// Appointment statuses. Public submissions always start pending; every
// transition afterwards is an admin action. There is no automatic expiry.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Appointment is a booking request from the public appointment form.
type Appointment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Purpose       string    `json:"purpose"`
	Message       string    `json:"message"`
	PreferredTime time.Time `json:"preferredTime"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (a Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

func (a *Appointment) GetID() string { return a.ID }

func (a *Appointment) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)
	if a.Status == "" {
		a.Status = StatusPending
	}
}

func (a *Appointment) Validate() error {
	if err := required("name", a.Name); err != nil {
		return err
	}
	if err := required("email", a.Email); err != nil {
		return err
	}
	if err := required("phone", a.Phone); err != nil {
		return err
	}
	if err := oneOf("purpose", a.Purpose, PurposeStudent, PurposeCollege, PurposeCorporate); err != nil {
		return err
	}
	if err := required("message", a.Message); err != nil {
		return err
	}
	if a.PreferredTime.IsZero() {
		return &ValidationError{Field: "preferredTime", Reason: "is required"}
	}
	return oneOf("status", a.Status, StatusPending, StatusApproved, StatusRejected, StatusCompleted)
}
