package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/markdown"
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
)

// EventDetail is an event plus the rendered description
type EventDetail struct {
	model.Event
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// RegisterEventsEndpoints registers CRUD endpoints for events under
// /api/events
func RegisterEventsEndpoints(s *server.Server) {
	registerContentEndpoints(s, s.Events, contentConfig[model.Event]{
		Path:             "/api/events",
		Singular:         "Event",
		Resource:         "events",
		DuplicateMessage: "An event with this slug already exists",
		WithSlugRoute:    true,
		Detail: func(ev *model.Event) interface{} {
			html, err := markdown.Render(ev.Description)
			if err != nil {
				return ev
			}
			return &EventDetail{Event: *ev, DescriptionHTML: html}
		},
	})
}
