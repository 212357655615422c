package gorm

import (
	"gorm.io/gorm"

	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

// Ensure the generic store satisfies the interface for each collection
var (
	_ store.ContentStore[model.Service]     = (*ContentStore[model.Service, *model.Service])(nil)
	_ store.ContentStore[model.Appointment] = (*ContentStore[model.Appointment, *model.Appointment])(nil)
	_ store.ContentStore[model.Event]       = (*ContentStore[model.Event, *model.Event])(nil)
	_ store.ContentStore[model.TeamMember]  = (*ContentStore[model.TeamMember, *model.TeamMember])(nil)
	_ store.ContentStore[model.Testimonial] = (*ContentStore[model.Testimonial, *model.Testimonial])(nil)
	_ store.ContentStore[model.Media]       = (*ContentStore[model.Media, *model.Media])(nil)
)

// NewServicesStore creates a ContentStore over the services collection.
// Services order by their admin-set position, then newest first.
func NewServicesStore(db *gorm.DB) *ContentStore[model.Service, *model.Service] {
	return NewContentStore[model.Service](db, ContentOptions{
		OrderBy:          "sort_order asc, created_at desc",
		VisibilityColumn: "is_visible",
		SlugColumn:       "slug",
	})
}

// NewAppointmentsStore creates a ContentStore over appointment requests.
// Appointments have no visibility toggle and list newest first.
func NewAppointmentsStore(db *gorm.DB) *ContentStore[model.Appointment, *model.Appointment] {
	return NewContentStore[model.Appointment](db, ContentOptions{
		OrderBy: "created_at desc",
	})
}

// NewEventsStore creates a ContentStore over the events collection
func NewEventsStore(db *gorm.DB) *ContentStore[model.Event, *model.Event] {
	return NewContentStore[model.Event](db, ContentOptions{
		OrderBy:          "date desc",
		VisibilityColumn: "is_visible",
		SlugColumn:       "slug",
	})
}

// NewTeamStore creates a ContentStore over team members
func NewTeamStore(db *gorm.DB) *ContentStore[model.TeamMember, *model.TeamMember] {
	return NewContentStore[model.TeamMember](db, ContentOptions{
		OrderBy:          "sort_order asc, created_at desc",
		VisibilityColumn: "is_visible",
	})
}

// NewTestimonialsStore creates a ContentStore over testimonials
func NewTestimonialsStore(db *gorm.DB) *ContentStore[model.Testimonial, *model.Testimonial] {
	return NewContentStore[model.Testimonial](db, ContentOptions{
		OrderBy:          "created_at desc",
		VisibilityColumn: "is_visible",
	})
}

// NewMediaStore creates a ContentStore over media items
func NewMediaStore(db *gorm.DB) *ContentStore[model.Media, *model.Media] {
	return NewContentStore[model.Media](db, ContentOptions{
		OrderBy:          "sort_order asc, created_at desc",
		VisibilityColumn: "is_visible",
	})
}
