package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a stored candidate document.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Label     string    `json:"label"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Job is a stored job description with its required skills.
type Job struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	SourceURL   string    `json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchRecord is a persisted scoring outcome for a resume/job pair.
type MatchRecord struct {
	ID             uuid.UUID `json:"id"`
	ResumeID       uuid.UUID `json:"resume_id"`
	JobID          uuid.UUID `json:"job_id"`
	Percentage     float64   `json:"percentage"`
	Similarity     float64   `json:"similarity"`
	SkillRatio     float64   `json:"skill_ratio"`
	MatchingSkills []string  `json:"matching_skills"`
	MissingSkills  []string  `json:"missing_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

// User is a registered account. PasswordHash never leaves this package's
// callers; API responses use a separate view type.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
