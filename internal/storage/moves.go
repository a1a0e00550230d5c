package storage

import (
	"database/sql"
	"fmt"

	"github.com/Eggplant203/cubik"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
	TsMs      int64
}

// MoveRepository provides CRUD operations for session moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records a single move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move cubik.Move, tsMs int64) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, move_index, notation, ts_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, move.Notation(), tsMs)

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubik.Move, startIndex int, tsMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO session_moves (session_id, move_index, notation, ts_ms)
				VALUES (?, ?, ?, ?)
			`, sessionID, startIndex+i, move.Notation(), tsMs)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation, ts_ms
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation, &m.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// CountBySession returns the number of recorded moves for a session.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM session_moves WHERE session_id = ?
	`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
