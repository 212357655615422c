package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
)

// RegisterTeamEndpoints registers CRUD endpoints for team members under
// /api/team
func RegisterTeamEndpoints(s *server.Server) {
	registerContentEndpoints(s, s.Team, contentConfig[model.TeamMember]{
		Path:     "/api/team",
		Singular: "Team member",
		Resource: "team",
	})
}
