package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqmath/iqmath-server/pkg/model"
)

func TestCreateAppointmentPublic(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := doRequest(srv, "POST", "/api/appointments",
		`{"name":"Asha","email":"ASHA@Example.com","phone":"+91 98765 43210",
		  "purpose":"student","message":"Weekend batch",
		  "preferredDate":"2026-09-15","preferredTime":"15:30"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, model.StatusPending, envelope.Data.Status)
	assert.Equal(t, "asha@example.com", envelope.Data.Email)
	assert.Equal(t, 15, envelope.Data.PreferredTime.Hour())
	assert.NotEmpty(t, envelope.Data.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentForcesPendingStatus(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// A submission cannot pick its own status
	w := doRequest(srv, "POST", "/api/appointments",
		`{"name":"Asha","email":"asha@example.com","phone":"12345",
		  "purpose":"corporate","message":"Team training","status":"approved",
		  "preferredTime":"2026-09-15T15:30:00Z"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, model.StatusPending, envelope.Data.Status)
}

func TestCreateAppointmentMissingField(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "POST", "/api/appointments",
		`{"name":"Asha","email":"asha@example.com",
		  "purpose":"student","preferredTime":"2026-09-15T15:30:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone is required")
}

func TestCreateAppointmentMissingMessage(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "POST", "/api/appointments",
		`{"name":"Asha","email":"asha@example.com","phone":"12345",
		  "purpose":"student","preferredTime":"2026-09-15T15:30:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")
}

func TestCreateAppointmentBadClockTime(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "POST", "/api/appointments",
		`{"name":"Asha","email":"asha@example.com","phone":"12345",
		  "purpose":"student","message":"hi",
		  "preferredDate":"2026-09-15","preferredTime":"half past three"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "preferredTime is invalid")
}

func TestListAppointmentsRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "GET", "/api/appointments", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestListAppointments(t *testing.T) {
	srv, mock := newTestServer(t)

	rows := sqlmock.NewRows(appointmentColumns()).
		AddRow(appointmentRow("appt-1", "pending")...).
		AddRow(appointmentRow("appt-2", "approved")...)

	mock.ExpectQuery(`SELECT \* FROM "appointments" ORDER BY created_at desc`).
		WillReturnRows(rows)

	w := doRequest(srv, "GET", "/api/appointments", "", adminCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "appt-1")
	assert.Contains(t, w.Body.String(), "appt-2")
}

func TestUpdateAppointmentStatus(t *testing.T) {
	srv, mock := newTestServer(t)

	// One lookup for the audit trail, one inside the patch
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE id = \$1`).
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(appointmentRow("appt-1", "pending")...))
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE id = \$1`).
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(appointmentRow("appt-1", "pending")...))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(srv, "PATCH", "/api/appointments/appt-1",
		`{"status":"approved","adminNotes":"Confirmed over phone"}`, adminCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, model.StatusApproved, envelope.Data.Status)
	assert.Equal(t, "Confirmed over phone", envelope.Data.AdminNotes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentRejectsBadStatus(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE id = \$1`).
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(appointmentRow("appt-1", "pending")...))
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE id = \$1`).
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(appointmentRow("appt-1", "pending")...))

	w := doRequest(srv, "PATCH", "/api/appointments/appt-1",
		`{"status":"cancelled"}`, adminCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status must be one of")
}

func TestDeleteAppointment(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments" WHERE id = \$1`).
		WithArgs("appt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(srv, "DELETE", "/api/appointments/appt-1", "", adminCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment deleted")
}
