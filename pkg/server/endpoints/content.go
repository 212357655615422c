package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iqmath/iqmath-server/pkg/audit"
	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server"
	"github.com/iqmath/iqmath-server/pkg/server/middleware"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

// contentConfig describes how one collection is exposed over HTTP.
type contentConfig[T any] struct {
	// Path is the route prefix, e.g. "/api/services".
	Path string

	// Singular is used in user-facing messages, e.g. "Service".
	Singular string

	// Resource is the audit name of the collection, e.g. "services".
	Resource string

	// DuplicateMessage is returned on unique constraint violations.
	// Empty for collections without unique columns.
	DuplicateMessage string

	// WithSlugRoute adds GET {path}/slug/{slug} for slug addressing.
	WithSlugRoute bool

	// Detail optionally decorates a record on single-record responses,
	// e.g. attaching rendered markdown.
	Detail func(*T) interface{}
}

// registerContentEndpoints wires the standard CRUD surface for one
// collection. Reads are public; anonymous callers only see visible
// records. Writes require a session cookie.
func registerContentEndpoints[T any](s *server.Server, cs store.ContentStore[T], cfg contentConfig[T]) {
	router := s.Router
	sessions := middleware.NewSessionAuthenticator()

	router.Handle(cfg.Path,
		sessions.Optional(handleContentList(cs, cfg))).Methods("GET")
	if cfg.WithSlugRoute {
		router.Handle(cfg.Path+"/slug/{slug}",
			sessions.Optional(handleContentGetBySlug(cs, cfg))).Methods("GET")
	}
	router.Handle(cfg.Path+"/{id}",
		sessions.Optional(handleContentGet(cs, cfg))).Methods("GET")

	router.Handle(cfg.Path,
		sessions.Middleware(handleContentCreate(cs, cfg))).Methods("POST")
	router.Handle(cfg.Path+"/{id}",
		sessions.Middleware(handleContentUpdate(cs, cfg))).Methods("PATCH", "PUT")
	router.Handle(cfg.Path+"/{id}",
		sessions.Middleware(handleContentDelete(cs, cfg))).Methods("DELETE")
}

func handleContentList[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Admin sessions see hidden records too
		visibleOnly := middleware.ClaimsFromContext(r.Context()) == nil

		recs, err := cs.List(visibleOnly)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch "+cfg.Resource)
			return
		}
		respondWithData(w, http.StatusOK, recs)
	}
}

func handleContentGet[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := cs.Get(mux.Vars(r)["id"])
		if err != nil {
			respondWithContentError(w, err, cfg, "Failed to fetch "+cfg.Resource)
			return
		}
		respondWithData(w, http.StatusOK, contentDetail(rec, cfg))
	}
}

func handleContentGetBySlug[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := cs.GetBySlug(mux.Vars(r)["slug"])
		if err != nil {
			respondWithContentError(w, err, cfg, "Failed to fetch "+cfg.Resource)
			return
		}
		respondWithData(w, http.StatusOK, contentDetail(rec, cfg))
	}
}

func handleContentCreate[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := cs.Create(&rec)
		logContentEvent(r, cfg.Resource, recordID(&rec), "create", err)
		if err != nil {
			respondWithContentError(w, err, cfg, "Failed to create "+cfg.Resource)
			return
		}

		respondWithData(w, http.StatusCreated, rec)
	}
}

func handleContentUpdate[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var patch json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rec, err := cs.Update(id, patch)
		logContentEvent(r, cfg.Resource, id, "update", err)
		if err != nil {
			respondWithContentError(w, err, cfg, "Failed to update "+cfg.Resource)
			return
		}

		respondWithData(w, http.StatusOK, rec)
	}
}

func handleContentDelete[T any](cs store.ContentStore[T], cfg contentConfig[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := cs.Delete(id)
		logContentEvent(r, cfg.Resource, id, "delete", err)
		if err != nil {
			respondWithContentError(w, err, cfg, "Failed to delete "+cfg.Resource)
			return
		}

		respondWithMessage(w, http.StatusOK, cfg.Singular+" deleted")
	}
}

func contentDetail[T any](rec *T, cfg contentConfig[T]) interface{} {
	if cfg.Detail != nil {
		return cfg.Detail(rec)
	}
	return rec
}

// respondWithContentError maps store and validation errors onto the
// response envelope.
func respondWithContentError[T any](w http.ResponseWriter, err error, cfg contentConfig[T], fallback string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, cfg.Singular+" not found")
	case errors.Is(err, store.ErrDuplicateKey) && cfg.DuplicateMessage != "":
		respondWithError(w, http.StatusBadRequest, cfg.DuplicateMessage)
	default:
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func logContentEvent(r *http.Request, resource, id, operation string, err error) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return
	}

	event := audit.ContentEvent{
		Email:      claims.Email,
		ClientIP:   clientIP(r),
		Resource:   resource,
		ResourceID: id,
		Operation:  operation,
		Success:    err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}

func recordID[T any](rec *T) string {
	if r, ok := any(rec).(model.Record); ok {
		return r.GetID()
	}
	return fmt.Sprintf("%v", rec)
}
