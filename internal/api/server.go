package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnipdr/omnipdr/internal/services"
)

// Server holds the HTTP handler dependencies. All endpoints speak JSON.
type Server struct {
	Students *services.StudentService
	Scores   *services.ScoreService
}

func NewServer(students *services.StudentService, scores *services.ScoreService) *Server {
	return &Server{Students: students, Scores: scores}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/students", func(r chi.Router) {
		r.Post("/", s.handleCreateStudent)
		r.Get("/", s.handleListStudents)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetStudent)
			r.Delete("/", s.handleDeleteStudent)
			r.Post("/exams", s.handleAddExamRecord)
			r.Post("/errors", s.handleLogError)
			r.Post("/errors/{errorID}/complete", s.handleCompleteReview)
			r.Post("/consultations", s.handleAddConsultation)
			r.Get("/report", s.handleReport)
			r.Get("/recommendations", s.handleRecommendations)
		})
	})

	r.Post("/scores/yks", s.handleYKSScore)
	r.Post("/scores/lgs", s.handleLGSScore)
	r.Get("/scores/required", s.handleRequiredScore)

	r.Get("/programs", s.handleSearchPrograms)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
