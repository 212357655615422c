package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/markdown"
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
)

// ServiceDetail is a service plus the rendered full description
type ServiceDetail struct {
	model.Service
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// RegisterServicesEndpoints registers CRUD endpoints for the service
// catalogue under /api/services
func RegisterServicesEndpoints(s *server.Server) {
	registerContentEndpoints(s, s.Services, contentConfig[model.Service]{
		Path:             "/api/services",
		Singular:         "Service",
		Resource:         "services",
		DuplicateMessage: "A service with this slug already exists",
		WithSlugRoute:    true,
		Detail: func(svc *model.Service) interface{} {
			html, err := markdown.Render(svc.FullDescription)
			if err != nil {
				return svc
			}
			return &ServiceDetail{Service: *svc, DescriptionHTML: html}
		},
	})
}
