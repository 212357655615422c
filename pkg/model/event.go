package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Event types.
const (
	EventWorkshop = "workshop"
	EventSeminar  = "seminar"
	EventTraining = "training"
	EventWebinar  = "webinar"
)

// Event statuses.
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
)

// Event is a workshop, seminar or webinar shown on the events page.
type Event struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `json:"title"`
	Slug        string         `gorm:"uniqueIndex" json:"slug"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Location    string         `json:"location"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Gallery     pq.StringArray `gorm:"type:text[]" json:"gallery"`
	IsVisible   *bool          `gorm:"column:is_visible" json:"isVisible"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (e Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (e *Event) GetID() string { return e.ID }

func (e *Event) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	if e.Slug == "" {
		e.Slug = Slugify(e.Title)
	} else {
		e.Slug = strings.ToLower(strings.TrimSpace(e.Slug))
	}
	if e.Status == "" {
		e.Status = EventUpcoming
	}
	if e.Gallery == nil {
		e.Gallery = pq.StringArray{}
	}
	if e.IsVisible == nil {
		visible := true
		e.IsVisible = &visible
	}
}

func (e *Event) Validate() error {
	if err := required("title", e.Title); err != nil {
		return err
	}
	if err := required("slug", e.Slug); err != nil {
		return err
	}
	if err := required("description", e.Description); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if err := required("location", e.Location); err != nil {
		return err
	}
	if err := oneOf("type", e.Type, EventWorkshop, EventSeminar, EventTraining, EventWebinar); err != nil {
		return err
	}
	return oneOf("status", e.Status, EventUpcoming, EventOngoing, EventCompleted)
}
