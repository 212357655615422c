package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqmath/iqmath-server/pkg/audit"
	"github.com/iqmath/iqmath-server/pkg/auth"
	"github.com/iqmath/iqmath-server/pkg/session"
)

func expectUserLookup(mock sqlmock.Sqlmock, email, passwordHash string) {
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}).
		AddRow("u-1", email, passwordHash, "Admin", "admin", now, now)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs(email).
		WillReturnRows(rows)
}

func TestLogin(t *testing.T) {
	srv, mock := newTestServer(t)

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	expectUserLookup(mock, "admin@iqmath.in", hash)

	w := doRequest(srv, "POST", "/api/auth/login",
		`{"email":"admin@iqmath.in","password":"secret-password"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "admin@iqmath.in")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, session.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	// The server is not in production mode here
	assert.False(t, cookie.Secure)

	claims := session.Decode(cookie.Value)
	require.NotNil(t, claims)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	srv, mock := newTestServer(t)

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)
	expectUserLookup(mock, "admin@iqmath.in", hash)

	w := doRequest(srv, "POST", "/api/auth/login",
		`{"email":"admin@iqmath.in","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUnknownUser(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@iqmath.in").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(srv, "POST", "/api/auth/login",
		`{"email":"nobody@iqmath.in","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, body := range []string{`{}`, `{"email":"a@b.c"}`, `{"password":"x"}`, `not json`} {
		w := doRequest(srv, "POST", "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Email and password are required")
	}
}

func TestMe(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "GET", "/api/auth/me", "", adminCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User UserResponse `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "u-1", envelope.Data.User.ID)
	assert.Equal(t, "admin@iqmath.in", envelope.Data.User.Email)
	assert.Equal(t, "admin", envelope.Data.User.Role)
}

func TestMeEmitsIdentityCheckAudit(t *testing.T) {
	srv, _ := newTestServer(t)

	var buf bytes.Buffer
	audit.DefaultLogger.SetWriter(&buf)
	defer audit.DefaultLogger.SetWriter(os.Stdout)

	w := doRequest(srv, "GET", "/api/auth/me", "", adminCookie(t))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, buf.String(), "identity-check")
	assert.Contains(t, buf.String(), "admin@iqmath.in checked its identity")

	buf.Reset()
	w = doRequest(srv, "GET", "/api/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, buf.String(), "anonymous client failed an identity check")
}

func TestMeWithoutCookie(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "GET", "/api/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}

func TestMeWithBadCookie(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "GET", "/api/auth/me", "",
		&http.Cookie{Name: session.CookieName, Value: "garbage"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestLogout(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, "POST", "/api/auth/logout", "", adminCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
