package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
)

// RegisterTestimonialsEndpoints registers CRUD endpoints for testimonials
// under /api/testimonials
func RegisterTestimonialsEndpoints(s *server.Server) {
	registerContentEndpoints(s, s.Testimonials, contentConfig[model.Testimonial]{
		Path:     "/api/testimonials",
		Singular: "Testimonial",
		Resource: "testimonials",
	})
}
