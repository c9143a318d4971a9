package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository archives completed sessions to Postgres. The file store remains
// the source of truth; this is a queryable copy.
//
// Expected schema:
//
//	CREATE TABLE sessions (
//	    session_id     uuid PRIMARY KEY,
//	    role           text NOT NULL,
//	    domain         text,
//	    interview_type text NOT NULL,
//	    difficulty     text,
//	    started_at     timestamptz NOT NULL,
//	    average_score  double precision NOT NULL,
//	    report         text NOT NULL,
//	    created_at     timestamptz NOT NULL DEFAULT now()
//	);
//
//	CREATE TABLE session_questions (
//	    sq_id      bigserial PRIMARY KEY,
//	    session_id uuid NOT NULL REFERENCES sessions (session_id) ON DELETE CASCADE,
//	    position   int NOT NULL,
//	    question   text NOT NULL,
//	    answer     text NOT NULL,
//	    feedback   text NOT NULL,
//	    score      int NOT NULL
//	);
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
