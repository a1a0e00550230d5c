package cubik

import (
	"encoding/json"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		cube, err := New(size)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cube.Scramble(20); err != nil {
			t.Fatal(err)
		}
		if err := cube.RotateCube(AxisY, TurnCW); err != nil {
			t.Fatal(err)
		}

		snap := cube.Snapshot()
		restored, err := FromSnapshot(snap)
		if err != nil {
			t.Fatalf("size %d: FromSnapshot: %v", size, err)
		}
		if !restored.State().Equal(cube.State()) {
			t.Errorf("size %d: snapshot round trip should preserve the state", size)
			t.Log(cube.State().String())
			t.Log(restored.State().String())
		}
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	cube, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	cube.ApplyNotation("R U R' U' F2 x")

	data, err := json.Marshal(cube.State())
	if err != nil {
		t.Fatal(err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatal(err)
	}
	if !state.Equal(cube.State()) {
		t.Error("JSON round trip should preserve the state")
	}
}

func TestRestoreRejectsMalformed(t *testing.T) {
	cube, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	cube.ApplyNotation("R U")
	before := cube.State()

	good := cube.Snapshot()

	mutations := []struct {
		name   string
		mutate func(Snapshot) Snapshot
	}{
		{"wrong version", func(s Snapshot) Snapshot {
			s.Version = 99
			return s
		}},
		{"missing face", func(s Snapshot) Snapshot {
			s.Faces = cloneFaces(s.Faces)
			delete(s.Faces, "U")
			return s
		}},
		{"extra face label", func(s Snapshot) Snapshot {
			s.Faces = cloneFaces(s.Faces)
			delete(s.Faces, "U")
			s.Faces["Q"] = make([]string, 9)
			return s
		}},
		{"wrong token count", func(s Snapshot) Snapshot {
			s.Faces = cloneFaces(s.Faces)
			s.Faces["F"] = s.Faces["F"][:8]
			return s
		}},
		{"bad token", func(s Snapshot) Snapshot {
			s.Faces = cloneFaces(s.Faces)
			row := append([]string(nil), s.Faces["F"]...)
			row[0] = "?"
			s.Faces["F"] = row
			return s
		}},
		{"orientation not a bijection", func(s Snapshot) Snapshot {
			o := make(map[string]string, len(s.Orientation))
			for k, v := range s.Orientation {
				o[k] = v
			}
			o["U"] = o["D"]
			s.Orientation = o
			return s
		}},
		{"missing orientation entry", func(s Snapshot) Snapshot {
			o := make(map[string]string, len(s.Orientation))
			for k, v := range s.Orientation {
				o[k] = v
			}
			delete(o, "F")
			s.Orientation = o
			return s
		}},
	}

	for _, m := range mutations {
		bad := m.mutate(good)
		if err := cube.Restore(bad); err == nil {
			t.Errorf("%s: Restore should fail", m.name)
		}
		if !cube.State().Equal(before) {
			t.Fatalf("%s: failed Restore must not mutate the live cube", m.name)
		}
	}

	// The unmutated snapshot still restores fine
	if err := cube.Restore(good); err != nil {
		t.Fatalf("Restore of valid snapshot: %v", err)
	}
}

func TestRestoreRejectsSizeMismatch(t *testing.T) {
	small, _ := New(3)
	big, _ := New(4)
	if err := small.Restore(big.Snapshot()); err == nil {
		t.Error("Restore with mismatched size should fail")
	}
}

func TestRestoreClearsHistory(t *testing.T) {
	cube, _ := New(3)
	cube.ApplyNotation("R U F")
	snap := cube.Snapshot()
	cube.ApplyNotation("L D")

	if err := cube.Restore(snap); err != nil {
		t.Fatal(err)
	}
	if cube.HistoryLen() != 0 {
		t.Errorf("HistoryLen = %d after Restore, want 0", cube.HistoryLen())
	}
	if ok, _ := cube.Undo(); ok {
		t.Error("Undo after Restore should report false")
	}
}

func cloneFaces(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
