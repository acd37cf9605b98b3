package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/skills"
)

type scoreRequest struct {
	ResumeText string   `json:"resume_text" validate:"required,min=1"`
	JobText    string   `json:"job_text" validate:"required,min=1"`
	Vocabulary []string `json:"vocabulary,omitempty"`
}

// handleScore computes a match score for a resume/job text pair without
// persisting anything. Callers may supply their own vocabulary; otherwise
// the server's configured vocabulary is used.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	vocabulary := req.Vocabulary
	if vocabulary == nil {
		vocabulary = s.vocabulary
	}

	result, err := s.engine.Match(req.ResumeText, req.JobText, vocabulary)
	if err != nil {
		if errors.Is(err, skills.ErrNilVocabulary) {
			s.errorResponse(w, http.StatusBadRequest, "no skill vocabulary configured or provided")
			return
		}
		log.Printf("Error scoring match: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to score match")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
