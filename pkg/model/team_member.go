package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeamMember is a profile on the team page.
type TeamMember struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Bio          string         `json:"bio"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills"`
	Achievements pq.StringArray `gorm:"type:text[]" json:"achievements"`
	LinkedIn     string         `gorm:"column:linkedin" json:"linkedin,omitempty"`
	Image        string         `json:"image,omitempty"`
	Order        int            `gorm:"column:sort_order" json:"order"`
	IsVisible    *bool          `gorm:"column:is_visible" json:"isVisible"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (m TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *TeamMember) GetID() string { return m.ID }

func (m *TeamMember) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	m.LinkedIn = strings.TrimSpace(m.LinkedIn)
	if m.Skills == nil {
		m.Skills = pq.StringArray{}
	}
	if m.Achievements == nil {
		m.Achievements = pq.StringArray{}
	}
	if m.IsVisible == nil {
		visible := true
		m.IsVisible = &visible
	}
}

func (m *TeamMember) Validate() error {
	if err := required("name", m.Name); err != nil {
		return err
	}
	if err := required("role", m.Role); err != nil {
		return err
	}
	return required("bio", m.Bio)
}
