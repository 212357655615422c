package endpoints

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iqmath/iqmath-server/pkg/config"
	"github.com/iqmath/iqmath-server/pkg/server"
	"github.com/iqmath/iqmath-server/pkg/session"
)

func newTestServer(t *testing.T) (*server.Server, sqlmock.Sqlmock) {
	t.Helper()

	srv, mock, db, err := NewMockTestServer()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return srv, mock
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, err := session.Issue("u-1", "admin@iqmath.in", "admin", config.Get().SessionSigningKey)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func doRequest(srv *server.Server, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func serviceColumns() []string {
	return []string{
		"id", "title", "slug", "short_description", "full_description",
		"category", "outcomes", "target_audience", "duration",
		"is_visible", "sort_order", "created_at", "updated_at",
	}
}

func serviceRow(id, title, slug, fullDescription string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, title, slug, "short", fullDescription,
		"training", "{}", "{}", "",
		true, 1, now, now,
	}
}

func appointmentColumns() []string {
	return []string{
		"id", "name", "email", "phone", "purpose", "message",
		"preferred_time", "status", "admin_notes", "created_at", "updated_at",
	}
}

func appointmentRow(id, status string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "Asha", "asha@example.com", "+91 98765 43210", "student",
		"Weekend batch", now.Add(48 * time.Hour), status, "", now, now,
	}
}
