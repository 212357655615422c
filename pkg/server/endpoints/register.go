package endpoints

import (
	"github.com/iqmath/iqmath-server/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterServicesEndpoints(srv)
	RegisterAppointmentsEndpoints(srv)
	RegisterEventsEndpoints(srv)
	RegisterTeamEndpoints(srv)
	RegisterTestimonialsEndpoints(srv)
	RegisterMediaEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
