package storage

import (
	"path/filepath"
	"testing"

	"github.com/Eggplant203/cubik"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Errorf("CurrentVersion = %d, want 1", version)
	}

	// Re-applying is a no-op
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second MigrateUp: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(3, "R U R' U'")
	if err != nil {
		t.Fatal(err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 3 {
		t.Errorf("Size = %d, want 3", s.Size)
	}
	if s.ScrambleText == nil || *s.ScrambleText != "R U R' U'" {
		t.Errorf("ScrambleText = %v, want R U R' U'", s.ScrambleText)
	}
	if s.EndedAt != nil || s.Solved {
		t.Error("fresh session should be open and unsolved")
	}

	if err := sessions.End(id, true, 42, 3, "{}"); err != nil {
		t.Fatal(err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.EndedAt == nil || !s.Solved || s.MoveCount != 42 || s.UndoCount != 3 {
		t.Errorf("ended session = %+v, want solved with 42 moves / 3 undos", s)
	}
}

func TestSessionGetLastAndList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	if _, err := sessions.GetLast(); err == nil {
		t.Error("GetLast on empty database should fail")
	}

	if _, err := sessions.Create(2, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := sessions.Create(4, "2R U"); err != nil {
		t.Fatal(err)
	}

	list, err := sessions.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d sessions, want 2", len(list))
	}
}

func TestMoveBatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	movesRepo := NewMoveRepository(db)

	id, err := sessions.Create(3, "")
	if err != nil {
		t.Fatal(err)
	}

	seq, err := cubik.ParseMoves("R U R' U' F2", 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := movesRepo.CreateBatch(id, seq, 0, 1234); err != nil {
		t.Fatal(err)
	}

	records, err := movesRepo.GetBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(seq) {
		t.Fatalf("got %d records, want %d", len(records), len(seq))
	}
	for i, rec := range records {
		if rec.MoveIndex != i {
			t.Errorf("record %d has index %d", i, rec.MoveIndex)
		}
		if rec.Notation != seq[i].Notation() {
			t.Errorf("record %d notation = %q, want %q", i, rec.Notation, seq[i].Notation())
		}
	}

	count, err := movesRepo.CountBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if count != len(seq) {
		t.Errorf("CountBySession = %d, want %d", count, len(seq))
	}
}

func TestForeignKeyCascade(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	movesRepo := NewMoveRepository(db)

	id, err := sessions.Create(3, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := movesRepo.Create(id, 0, cubik.R, 0); err != nil {
		t.Fatal(err)
	}

	if _, err := db.Exec("DELETE FROM sessions WHERE session_id = ?", id); err != nil {
		t.Fatal(err)
	}
	count, err := movesRepo.CountBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("moves should cascade on session delete, %d left", count)
	}
}
