package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnipdr/omnipdr/internal/models"
	"github.com/omnipdr/omnipdr/internal/repository"
	"github.com/omnipdr/omnipdr/internal/services"
)

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var req services.CreateStudentRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	student, err := s.Students.CreateStudent(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	filter := repository.StudentFilter{
		Track: models.ExamTrack(r.URL.Query().Get("track")),
		Name:  r.URL.Query().Get("name"),
		Limit: limit,
	}

	students, err := s.Students.ListStudents(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if students == nil {
		students = []models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.Students.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.Students.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddExamRecord(w http.ResponseWriter, r *http.Request) {
	var req services.AddExamRecordRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	student, err := s.Students.AddExamRecord(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (s *Server) handleLogError(w http.ResponseWriter, r *http.Request) {
	var req services.LogErrorRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.Students.LogError(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleCompleteReview(w http.ResponseWriter, r *http.Request) {
	on, err := queryDate(r, "date")
	if err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.Students.CompleteReview(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "errorID"), on)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleAddConsultation(w http.ResponseWriter, r *http.Request) {
	var req services.AddConsultationRequest
	if err := readJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	note, err := s.Students.AddConsultation(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.Students.FullReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
