package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial types.
const (
	TestimonialStudent     = "student"
	TestimonialInstitution = "institution"
	TestimonialCorporate   = "corporate"
)

// MaxTestimonialLength bounds quoted testimonial content.
const MaxTestimonialLength = 500

// Testimonial is a quote shown on the home page.
type Testimonial struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	IsVisible    *bool     `gorm:"column:is_visible" json:"isVisible"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (t Testimonial) TableName() string {
	return "testimonials"
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (t *Testimonial) GetID() string { return t.ID }

func (t *Testimonial) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Role = strings.TrimSpace(t.Role)
	t.Organization = strings.TrimSpace(t.Organization)
	if t.IsVisible == nil {
		visible := true
		t.IsVisible = &visible
	}
}

func (t *Testimonial) Validate() error {
	if err := required("name", t.Name); err != nil {
		return err
	}
	if err := required("role", t.Role); err != nil {
		return err
	}
	if err := required("organization", t.Organization); err != nil {
		return err
	}
	if err := oneOf("type", t.Type, TestimonialStudent, TestimonialInstitution, TestimonialCorporate); err != nil {
		return err
	}
	if err := required("content", t.Content); err != nil {
		return err
	}
	return maxLength("content", t.Content, MaxTestimonialLength)
}
