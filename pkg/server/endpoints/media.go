package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
)

// RegisterMediaEndpoints registers CRUD endpoints for gallery media under
// /api/media
func RegisterMediaEndpoints(s *server.Server) {
	registerContentEndpoints(s, s.Media, contentConfig[model.Media]{
		Path:     "/api/media",
		Singular: "Media item",
		Resource: "media",
	})
}
