package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"weather-app/controller"
	"weather-app/datasource"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Searcher is the part of the controller the server drives
type Searcher interface {
	Search(ctx context.Context, city string) controller.View
	DismissValidation() controller.View
}

// Server represents the API server
type Server struct {
	searcher Searcher
	views    *ViewStore
	page     *template.Template
	server   *http.Server
}

// NewServer creates a new API server
func NewServer(searcher Searcher, views *ViewStore, port int) *Server {
	s := &Server{
		searcher: searcher,
		views:    views,
		page:     template.Must(template.New("page").Parse(pageTemplate)),
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndexSearch)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Get("/view", s.handleGetView)
		r.Post("/dismiss", s.handleDismiss)
		r.Get("/health", s.handleHealthCheck)
	})

	return r
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleIndex renders the page from the latest view. It never searches:
// every client shares the one controller view, so only POST may change it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, _ := s.views.Latest()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, view); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

// handleIndexSearch takes the page form submission and redirects back to the page
func (s *Server) handleIndexSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	s.search(r, r.PostFormValue("city"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleSearch accepts {"city": "..."} or a form field named city
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var in struct {
		City string `json:"city"`
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
			return
		}
		in.City = r.FormValue("city")
	}

	view := s.search(r, in.City)
	writeJSON(w, statusFor(view), view)
}

// handleGetView returns the latest published view
func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	view, updated := s.views.Latest()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"view":    view,
		"updated": updated,
	})
}

// handleDismiss clears a validation prompt, as clicking away from the search box does
func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.searcher.DismissValidation())
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// search runs detached from the request so a dropped client does not abort it;
// the provider timeout still bounds it.
func (s *Server) search(r *http.Request, city string) controller.View {
	return s.searcher.Search(context.WithoutCancel(r.Context()), city)
}

func statusFor(v controller.View) int {
	var verr *controller.ValidationError
	switch {
	case errors.As(v.Err, &verr):
		return http.StatusBadRequest
	case v.State == controller.Error && errors.Is(v.Err, datasource.ErrNotFound):
		return http.StatusNotFound
	case v.State == controller.Error:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
