package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// routes assembles the chi router: open signup/login endpoints, and the
// authenticated group behind the bearer-token gate.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.corsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("teakeeper"))
	})

	r.Post("/signup", s.handleSignUp)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/user-info", s.handleUserInfo)

		r.Route("/teas", func(r chi.Router) {
			r.Post("/", s.handleCreateTea)
			r.Get("/", s.handleListTeas)
			r.Get("/{id}", s.handleGetTea)
			r.Put("/{id}", s.handleUpdateTea)
			r.Delete("/{id}", s.handleDeleteTea)
		})
	})

	return r
}
