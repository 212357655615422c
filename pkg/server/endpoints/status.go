package endpoints

import (
	"net/http"
	"os"

	"github.com/iqmath/iqmath-server/pkg/server"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

// StatusResponse is the body of the health endpoint
type StatusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the root and health endpoints (no
// auth required)
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleRoot).Methods("GET")
	s.Router.HandleFunc("/api/health", handleHealth(s.Health)).Methods("GET")
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithData(w, http.StatusOK, map[string]string{"version": displayVersion()})
}

func displayVersion() string {
	if version := os.Getenv("IQMATH_VERSION_DISPLAY"); version != "" {
		return version
	}
	return "0.1.0"
}

func handleHealth(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := StatusResponse{Status: "ok", Version: displayVersion(), Database: "ok"}
		code := http.StatusOK
		if err := health.CheckConnectivity(); err != nil {
			status.Status = "degraded"
			status.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}

		if code != http.StatusOK {
			respondWithJSON(w, code, map[string]interface{}{"success": false, "data": status})
			return
		}
		respondWithData(w, code, status)
	}
}
