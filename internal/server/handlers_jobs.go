package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/fetch"
)

type createJobRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=300"`
	Description string   `json:"description" validate:"required_without=SourceURL"`
	SourceURL   string   `json:"source_url" validate:"omitempty,url"`
	Skills      []string `json:"skills"`
}

// handleCreateJob stores a job description. When source_url is given and
// description is empty, the job text is fetched from the posting page.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	description := req.Description
	if description == "" && req.SourceURL != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		text, err := fetch.JobText(ctx, req.SourceURL, &fetch.Options{UseBrowser: s.useBrowser})
		if err != nil {
			var fetchErr *fetch.Error
			if errors.As(err, &fetchErr) {
				s.errorResponse(w, http.StatusBadGateway, fetchErr.Error())
				return
			}
			log.Printf("Error fetching job posting: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to fetch job posting")
			return
		}
		description = text
	}

	id, err := s.db.CreateJob(r.Context(), userID, req.Title, description, req.SourceURL, req.Skills)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListJobs lists the authenticated user's jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), userID, 0)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleGetJob retrieves one of the authenticated user's jobs.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.ownedJob(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob deletes one of the authenticated user's jobs.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.ownedJob(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteJob(r.Context(), job.ID); err != nil {
		log.Printf("Error deleting job: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedJob loads the job from the path ID and verifies ownership. On
// failure it writes the error response and returns ok=false.
func (s *Server) ownedJob(w http.ResponseWriter, r *http.Request) (*db.Job, bool) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return nil, false
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching job: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch job")
		return nil, false
	}
	if job == nil || job.UserID != userID {
		notFound := &ErrNotFound{Kind: "job", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return job, true
}
