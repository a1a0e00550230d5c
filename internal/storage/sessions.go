package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a play session in the database.
type Session struct {
	SessionID    string
	Size         int
	ScrambleText *string
	StartedAt    time.Time
	EndedAt      *time.Time
	Solved       bool
	MoveCount    int
	UndoCount    int
	FinalState   *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(size int, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, scramble_text, started_at)
		VALUES (?, ?, ?, ?)
	`, id, size, scramblePtr, startedAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete and records the outcome.
func (r *SessionRepository) End(sessionID string, solved bool, moveCount, undoCount int, finalState string) error {
	endedAt := time.Now().UTC()

	var statePtr *string
	if finalState != "" {
		statePtr = &finalState
	}

	solvedInt := 0
	if solved {
		solvedInt = 1
	}

	_, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?, move_count = ?, undo_count = ?, final_state = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), solvedInt, moveCount, undoCount, statePtr, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, scramble_text, started_at, ended_at,
		       solved, move_count, undo_count, final_state
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently started session.
func (r *SessionRepository) GetLast() (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, size, scramble_text, started_at, ended_at,
		       solved, move_count, undo_count, final_state
		FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no sessions recorded yet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, size, scramble_text, started_at, ended_at,
		       solved, move_count, undo_count, final_state
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanSession.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr *string
	var solvedInt int

	err := row.Scan(&s.SessionID, &s.Size, &s.ScrambleText, &startedAtStr,
		&endedAtStr, &solvedInt, &s.MoveCount, &s.UndoCount, &s.FinalState)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if endedAtStr != nil {
		endedAt, err := time.Parse(time.RFC3339, *endedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		s.EndedAt = &endedAt
	}
	s.Solved = solvedInt != 0

	return &s, nil
}
