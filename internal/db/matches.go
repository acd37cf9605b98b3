package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveMatch stores a scoring outcome for a resume/job pair, replacing any
// previous result for the same pair.
func (db *DB) SaveMatch(ctx context.Context, m *MatchRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_results
		   (resume_id, job_id, percentage, similarity, skill_ratio, matching_skills, missing_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (resume_id, job_id) DO UPDATE SET
		   percentage = $3, similarity = $4, skill_ratio = $5,
		   matching_skills = $6, missing_skills = $7, created_at = NOW()
		 RETURNING id`,
		m.ResumeID, m.JobID, m.Percentage, m.Similarity, m.SkillRatio,
		m.MatchingSkills, m.MissingSkills,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return id, nil
}

// GetMatch retrieves a match result by ID. Returns nil if not found.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*MatchRecord, error) {
	return db.scanMatch(db.pool.QueryRow(ctx,
		`SELECT id, resume_id, job_id, percentage, similarity, skill_ratio,
		        matching_skills, missing_skills, created_at
		 FROM match_results WHERE id = $1`,
		id,
	))
}

// GetMatchForPair retrieves the stored result for a resume/job pair so
// callers can serve repeat requests without recomputing. Returns nil if the
// pair has not been scored.
func (db *DB) GetMatchForPair(ctx context.Context, resumeID, jobID uuid.UUID) (*MatchRecord, error) {
	return db.scanMatch(db.pool.QueryRow(ctx,
		`SELECT id, resume_id, job_id, percentage, similarity, skill_ratio,
		        matching_skills, missing_skills, created_at
		 FROM match_results WHERE resume_id = $1 AND job_id = $2`,
		resumeID, jobID,
	))
}

// ListMatchesForResume retrieves all stored results for a resume, best first.
func (db *DB) ListMatchesForResume(ctx context.Context, resumeID uuid.UUID) ([]MatchRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, job_id, percentage, similarity, skill_ratio,
		        matching_skills, missing_skills, created_at
		 FROM match_results WHERE resume_id = $1
		 ORDER BY percentage DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		var m MatchRecord
		if err := rows.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.Percentage, &m.Similarity,
			&m.SkillRatio, &m.MatchingSkills, &m.MissingSkills, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (db *DB) scanMatch(row pgx.Row) (*MatchRecord, error) {
	var m MatchRecord
	err := row.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.Percentage, &m.Similarity,
		&m.SkillRatio, &m.MatchingSkills, &m.MissingSkills, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}
