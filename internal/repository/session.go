package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prepdrill/prepdrill/pkg/model"
)

// ArchiveSession inserts the session row and its question rows in one
// transaction.
func (r *Repository) ArchiveSession(ctx context.Context, rec *model.SessionRecord) error {
	startedAt, err := time.Parse(time.RFC3339, rec.SessionInfo.StartTime)
	if err != nil {
		startedAt = time.Now()
	}

	var sum, valid int
	for _, s := range rec.Scores {
		if s > 0 {
			sum += s
			valid++
		}
	}
	var avg float64
	if valid > 0 {
		avg = float64(sum) / float64(valid)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertSession = `
INSERT INTO sessions (session_id, role, domain, interview_type, difficulty, started_at, average_score, report)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	info := rec.SessionInfo
	if _, err := tx.Exec(ctx, insertSession,
		info.SessionID, info.Role, info.Domain, info.InterviewType, info.Difficulty,
		startedAt, avg, rec.Report); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	batch := &pgx.Batch{}
	const insertQuestion = `
INSERT INTO session_questions (session_id, position, question, answer, feedback, score)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for i := range rec.Answers {
		batch.Queue(insertQuestion,
			info.SessionID, i, info.Questions[i], rec.Answers[i], rec.Feedback[i], rec.Scores[i])
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < len(rec.Answers); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("batch insert question %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

// ArchivedSession is a summary row for listings.
type ArchivedSession struct {
	SessionID     string    `json:"session_id"`
	Role          string    `json:"role"`
	Domain        string    `json:"domain,omitempty"`
	InterviewType string    `json:"interview_type"`
	AverageScore  float64   `json:"average_score"`
	StartedAt     time.Time `json:"started_at"`
}

func (r *Repository) RecentSessions(ctx context.Context, limit int) ([]ArchivedSession, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT session_id, role, domain, interview_type, average_score, started_at
FROM sessions
ORDER BY started_at DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []ArchivedSession
	for rows.Next() {
		var s ArchivedSession
		if err := rows.Scan(&s.SessionID, &s.Role, &s.Domain, &s.InterviewType, &s.AverageScore, &s.StartedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
