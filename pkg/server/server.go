package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/iqmath/iqmath-server/pkg/config"
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server/store"
	gormstore "github.com/iqmath/iqmath-server/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	Users        store.UsersStore
	Health       store.HealthStore
	Services     store.ContentStore[model.Service]
	Appointments store.ContentStore[model.Appointment]
	Events       store.ContentStore[model.Event]
	Team         store.ContentStore[model.TeamMember]
	Testimonials store.ContentStore[model.Testimonial]
	Media        store.ContentStore[model.Media]

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter()

	cors := handlers.CORS(
		handlers.AllowedOrigins(config.Get().AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:       router,
		DB:           db,
		Users:        gormstore.NewUsersStore(db),
		Health:       gormstore.NewHealthStore(db),
		Services:     gormstore.NewServicesStore(db),
		Appointments: gormstore.NewAppointmentsStore(db),
		Events:       gormstore.NewEventsStore(db),
		Team:         gormstore.NewTeamStore(db),
		Testimonials: gormstore.NewTestimonialsStore(db),
		Media:        gormstore.NewMediaStore(db),
		srv:          srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
