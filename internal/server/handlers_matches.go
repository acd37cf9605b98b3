package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/skills"
)

type createMatchRequest struct {
	ResumeID uuid.UUID `json:"resume_id" validate:"required"`
	JobID    uuid.UUID `json:"job_id" validate:"required"`
	// Force recomputes the score even when a stored result exists.
	Force bool `json:"force"`
}

// handleCreateMatch scores a stored resume against a stored job and
// persists the result. Repeat requests for the same pair are served from
// the stored result unless force is set.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, ok := s.ownedResumeByID(w, r, req.ResumeID)
	if !ok {
		return
	}
	job, ok := s.ownedJobByID(w, r, req.JobID)
	if !ok {
		return
	}

	if !req.Force {
		cached, err := s.db.GetMatchForPair(r.Context(), resume.ID, job.ID)
		if err != nil {
			log.Printf("Error looking up stored match: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to compute match")
			return
		}
		if cached != nil {
			s.jsonResponse(w, http.StatusOK, cached)
			return
		}
	}

	// Jobs with a curated skill list are scored against it; otherwise
	// the server-wide vocabulary applies.
	vocabulary := job.Skills
	if len(vocabulary) == 0 {
		vocabulary = s.vocabulary
	}

	result, err := s.engine.Match(resume.Text, job.Description, vocabulary)
	if err != nil {
		if errors.Is(err, skills.ErrNilVocabulary) {
			s.errorResponse(w, http.StatusBadRequest, "no skill vocabulary configured for this job")
			return
		}
		log.Printf("Error computing match: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to compute match")
		return
	}

	record := &db.MatchRecord{
		ResumeID:       resume.ID,
		JobID:          job.ID,
		Percentage:     result.Percentage,
		Similarity:     result.Similarity,
		SkillRatio:     result.SkillRatio,
		MatchingSkills: result.MatchingSkills,
		MissingSkills:  result.MissingSkills,
	}
	id, err := s.db.SaveMatch(r.Context(), record)
	if err != nil {
		log.Printf("Error saving match: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save match")
		return
	}
	record.ID = id

	s.jsonResponse(w, http.StatusCreated, record)
}

// handleGetMatch retrieves a stored match result by ID.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	match, err := s.db.GetMatch(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching match: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch match")
		return
	}
	if match == nil {
		notFound := &ErrNotFound{Kind: "match", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if _, ok := s.ownedResumeByID(w, r, match.ResumeID); !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

// handleListResumeMatches lists stored match results for a resume, best
// first.
func (s *Server) handleListResumeMatches(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	matches, err := s.db.ListMatchesForResume(r.Context(), resume.ID)
	if err != nil {
		log.Printf("Error listing matches: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list matches")
		return
	}
	if matches == nil {
		matches = []db.MatchRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// ownedResumeByID is ownedResume for an ID from the request body.
func (s *Server) ownedResumeByID(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Resume, bool) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
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

// ownedJobByID is ownedJob for an ID from the request body.
func (s *Server) ownedJobByID(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Job, bool) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
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
