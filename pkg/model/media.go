package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media types.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Media is a gallery item, optionally linked to an event.
type Media struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"column:url" json:"url"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Caption   string    `json:"caption"`
	EventRef  *string   `gorm:"column:event_ref" json:"eventRef,omitempty"`
	Order     int       `gorm:"column:sort_order" json:"order"`
	IsVisible *bool     `gorm:"column:is_visible" json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Media) TableName() string {
	return "media"
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *Media) GetID() string { return m.ID }

func (m *Media) Normalize() {
	m.Category = strings.TrimSpace(m.Category)
	m.Caption = strings.TrimSpace(m.Caption)
	if m.IsVisible == nil {
		visible := true
		m.IsVisible = &visible
	}
}

func (m *Media) Validate() error {
	if err := required("url", m.URL); err != nil {
		return err
	}
	if err := oneOf("type", m.Type, MediaImage, MediaVideo); err != nil {
		return err
	}
	return required("category", m.Category)
}
