package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iqmath/iqmath-server/pkg/audit"
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
	"github.com/iqmath/iqmath-server/pkg/server/middleware"
)

var appointmentsConfig = contentConfig[model.Appointment]{
	Path:     "/api/appointments",
	Singular: "Appointment",
	Resource: "appointments",
}

// RegisterAppointmentsEndpoints registers the appointment endpoints.
// Creation is open to the public booking form; everything else requires
// an admin session.
func RegisterAppointmentsEndpoints(s *server.Server) {
	router := s.Router
	cs := s.Appointments
	sessions := middleware.NewSessionAuthenticator()

	router.Handle("/api/appointments",
		sessions.Optional(handleAppointmentCreate(s))).Methods("POST")

	router.Handle("/api/appointments",
		sessions.Middleware(handleContentList(cs, appointmentsConfig))).Methods("GET")
	router.Handle("/api/appointments/{id}",
		sessions.Middleware(handleContentGet(cs, appointmentsConfig))).Methods("GET")
	router.Handle("/api/appointments/{id}",
		sessions.Middleware(handleAppointmentUpdate(s))).Methods("PATCH", "PUT")
	router.Handle("/api/appointments/{id}",
		sessions.Middleware(handleContentDelete(cs, appointmentsConfig))).Methods("DELETE")
}

func handleAppointmentCreate(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		for _, field := range []string{"name", "email", "phone", "purpose", "preferredTime"} {
			if v, ok := body[field]; !ok || v == nil || v == "" {
				respondWithError(w, http.StatusBadRequest, field+" is required")
				return
			}
		}

		// The booking form submits a date and a clock time separately
		if date, ok := body["preferredDate"].(string); ok && date != "" {
			if clock, ok := body["preferredTime"].(string); ok {
				at, err := time.ParseInLocation("2006-01-02T15:04:05", date+"T"+clock+":00", time.Local)
				if err != nil {
					respondWithError(w, http.StatusBadRequest, "preferredTime is invalid")
					return
				}
				body["preferredTime"] = at.Format(time.RFC3339)
			}
			delete(body, "preferredDate")
		}

		// Public submissions always start pending and cannot pick their
		// own identity or timestamps
		body["status"] = model.StatusPending
		delete(body, "id")
		delete(body, "createdAt")
		delete(body, "updatedAt")

		raw, err := json.Marshal(body)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var appt model.Appointment
		if err := json.Unmarshal(raw, &appt); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := s.Appointments.Create(&appt); err != nil {
			respondWithContentError(w, err, appointmentsConfig, "Failed to create appointment")
			return
		}

		respondWithData(w, http.StatusCreated, appt)
	}
}

// handleAppointmentUpdate is the generic update plus an audit trail for
// status transitions.
func handleAppointmentUpdate(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var patch json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		before, err := s.Appointments.Get(id)
		if err != nil {
			respondWithContentError(w, err, appointmentsConfig, "Failed to update appointments")
			return
		}

		appt, err := s.Appointments.Update(id, patch)
		if err != nil {
			logContentEvent(r, "appointments", id, "update", err)
			respondWithContentError(w, err, appointmentsConfig, "Failed to update appointments")
			return
		}

		if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
			if before.Status != appt.Status {
				audit.Log(audit.AppointmentStatusEvent{
					Email:         claims.Email,
					ClientIP:      clientIP(r),
					AppointmentID: id,
					FromStatus:    before.Status,
					ToStatus:      appt.Status,
					Success:       true,
				})
			} else {
				logContentEvent(r, "appointments", id, "update", nil)
			}
		}

		respondWithData(w, http.StatusOK, appt)
	}
}
