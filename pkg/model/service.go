package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service categories.
const (
	CategoryTraining    = "training"
	CategoryConsulting  = "consulting"
	CategoryDevelopment = "development"
)

// MaxShortDescriptionLength bounds the teaser text shown on listing pages.
const MaxShortDescriptionLength = 300

// Service is an offering shown on the public services page.
type Service struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	Title            string         `json:"title"`
	Slug             string         `gorm:"uniqueIndex" json:"slug"`
	ShortDescription string         `json:"shortDescription"`
	FullDescription  string         `json:"fullDescription"`
	Category         string         `json:"category"`
	Outcomes         pq.StringArray `gorm:"type:text[]" json:"outcomes"`
	TargetAudience   pq.StringArray `gorm:"type:text[]" json:"targetAudience"`
	Duration         string         `json:"duration,omitempty"`
	IsVisible        *bool          `gorm:"column:is_visible" json:"isVisible"`
	Order            int            `gorm:"column:sort_order" json:"order"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (s Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (s *Service) GetID() string { return s.ID }

// Normalize trims text fields, derives the slug from the title when
// absent, and defaults visibility to true.
func (s *Service) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.ShortDescription = strings.TrimSpace(s.ShortDescription)
	if s.Slug == "" {
		s.Slug = Slugify(s.Title)
	} else {
		s.Slug = strings.ToLower(strings.TrimSpace(s.Slug))
	}
	if s.Outcomes == nil {
		s.Outcomes = pq.StringArray{}
	}
	if s.TargetAudience == nil {
		s.TargetAudience = pq.StringArray{}
	}
	if s.IsVisible == nil {
		visible := true
		s.IsVisible = &visible
	}
}

func (s *Service) Validate() error {
	if err := required("title", s.Title); err != nil {
		return err
	}
	if err := required("slug", s.Slug); err != nil {
		return err
	}
	if err := required("shortDescription", s.ShortDescription); err != nil {
		return err
	}
	if err := maxLength("shortDescription", s.ShortDescription, MaxShortDescriptionLength); err != nil {
		return err
	}
	if err := required("fullDescription", s.FullDescription); err != nil {
		return err
	}
	return oneOf("category", s.Category, CategoryTraining, CategoryConsulting, CategoryDevelopment)
}
