package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
)

type createResumeRequest struct {
	Label string `json:"label" validate:"required,min=1,max=200"`
	Text  string `json:"text" validate:"required,min=1"`
}

// handleCreateResume stores a resume for the authenticated user.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createResumeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.CreateResume(r.Context(), userID, req.Label, req.Text)
	if err != nil {
		log.Printf("Error creating resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListResumes lists the authenticated user's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID, 0)
	if err != nil {
		log.Printf("Error listing resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume retrieves one of the authenticated user's resumes.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes one of the authenticated user's resumes.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		log.Printf("Error deleting resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedResume loads the resume from the path ID and verifies ownership.
// On failure it writes the error response and returns ok=false.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return nil, false
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch resume")
		return nil, false
	}
	if resume == nil || resume.UserID != userID {
		notFound := &ErrNotFound{Kind: "resume", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return resume, true
}
