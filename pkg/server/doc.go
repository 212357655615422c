// Package server provides the HTTP server for the iqmath API.
//
// This package implements the core HTTP server that handles the public
// website endpoints and the cookie-authenticated admin API. It uses
// gorilla/mux for routing and provides middleware for authentication and
// request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, "0.0.0.0", "9292")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the router, the database handle and one store
// per collection. Endpoints are registered via the endpoints subpackage:
//
//   - /api/auth/login - admin login, sets the session cookie
//   - /api/auth/me - identity of the current session
//   - /api/services - service catalogue
//   - /api/appointments - booking requests
//   - /api/events, /api/team, /api/testimonials, /api/media
package server
