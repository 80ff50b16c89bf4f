package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnipdr/omnipdr/internal/catalog"
	"github.com/omnipdr/omnipdr/internal/services"
)

func (s *Server) handleYKSScore(w http.ResponseWriter, r *http.Request) {
	var req services.YKSScoreRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Scores.YKSScore(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLGSScore(w http.ResponseWriter, r *http.Request) {
	var req services.LGSScoreRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Scores.LGSScore(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRequiredScore(w http.ResponseWriter, r *http.Request) {
	rank, err := queryInt(r, "rank", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	score, err := s.Scores.RequiredScore(r.Context(), r.URL.Query().Get("table"), rank)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"table": r.URL.Query().Get("table"),
		"rank":  rank,
		"score": score,
	})
}

func (s *Server) handleSearchPrograms(w http.ResponseWriter, r *http.Request) {
	minScore, err := queryFloat(r, "minScore", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	maxScore, err := queryFloat(r, "maxScore", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	programs := s.Scores.SearchPrograms(r.Context(), catalog.Filter{
		ScoreType:  q.Get("scoreType"),
		City:       q.Get("city"),
		Department: q.Get("department"),
		Kind:       q.Get("kind"),
		MinScore:   minScore,
		MaxScore:   maxScore,
	})
	if programs == nil {
		programs = []catalog.Program{}
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	obp, err := queryFloat(r, "obp", 50)
	if err != nil {
		handleError(w, r, err)
		return
	}

	rec, err := s.Scores.RecommendForStudent(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("track"), obp)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
