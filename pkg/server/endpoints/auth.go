package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iqmath/iqmath-server/pkg/audit"
	"github.com/iqmath/iqmath-server/pkg/auth"
	"github.com/iqmath/iqmath-server/pkg/config"
	"github.com/iqmath/iqmath-server/pkg/server"
	"github.com/iqmath/iqmath-server/pkg/server/middleware"
	"github.com/iqmath/iqmath-server/pkg/server/store"
	"github.com/iqmath/iqmath-server/pkg/session"
)

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the user shape returned by the auth endpoints
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// RegisterAuthEndpoints registers the login, identity and logout endpoints
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router
	users := s.Users

	// POST /api/auth/login - exchange credentials for a session cookie
	router.HandleFunc("/api/auth/login", handleLogin(users)).Methods("POST")

	// GET /api/auth/me - identity of the current session cookie
	router.HandleFunc("/api/auth/me", handleMe()).Methods("GET")

	// POST /api/auth/logout - clear the session cookie
	router.HandleFunc("/api/auth/logout", handleLogout()).Methods("POST")
}

func handleLogin(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}
		if body.Email == "" || body.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, err := users.ByEmail(body.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				audit.Log(audit.LoginEvent{
					Email:        body.Email,
					ClientIP:     clientIP(r),
					Success:      false,
					ErrorMessage: "unknown user",
				})
				respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !auth.CheckPassword(user.PasswordHash, body.Password) {
			audit.Log(audit.LoginEvent{
				Email:        user.Email,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: "wrong password",
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		cfg := config.Get()
		token, err := session.Issue(user.ID, user.Email, user.Role, cfg.SessionSigningKey)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		http.SetCookie(w, sessionCookie(token, int(session.TokenTTL.Seconds()), cfg.IsProduction()))

		audit.Log(audit.LoginEvent{
			Email:    user.Email,
			ClientIP: clientIP(r),
			Success:  true,
		})

		respondWithData(w, http.StatusOK, map[string]interface{}{
			"user": UserResponse{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
				Role:  user.Role,
			},
		})
	}
}

func handleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			audit.Log(audit.IdentityCheckEvent{ClientIP: clientIP(r), Success: false})
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims := session.Verify(cookie.Value, config.Get().SessionSigningKey)
		if claims == nil {
			audit.Log(audit.IdentityCheckEvent{ClientIP: clientIP(r), Success: false})
			respondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		audit.Log(audit.IdentityCheckEvent{
			Email:    claims.Email,
			ClientIP: clientIP(r),
			Success:  true,
		})

		respondWithData(w, http.StatusOK, map[string]interface{}{
			"user": UserResponse{
				ID:    claims.UserID,
				Email: claims.Email,
				Role:  claims.Role,
			},
		})
	}
}

func handleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
			audit.Log(audit.LogoutEvent{Email: claims.Email, ClientIP: clientIP(r)})
		} else if cookie, err := r.Cookie(session.CookieName); err == nil {
			if claims := session.Verify(cookie.Value, config.Get().SessionSigningKey); claims != nil {
				audit.Log(audit.LogoutEvent{Email: claims.Email, ClientIP: clientIP(r)})
			}
		}

		// Expire the cookie regardless of session validity
		http.SetCookie(w, sessionCookie("", -1, config.Get().IsProduction()))
		respondWithMessage(w, http.StatusOK, "Logged out")
	}
}

func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
