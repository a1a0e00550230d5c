package cubik

import "testing"

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{NewFaceTurn(FaceR, TurnCW), "R"},
		{NewFaceTurn(FaceR, TurnCCW), "R'"},
		{NewFaceTurn(FaceU, TurnDouble), "U2"},
		{NewSliceTurn(AxisY, 1, TurnCW), "2U"},
		{NewSliceTurn(AxisX, 2, TurnCCW), "3R'"},
		{NewSliceTurn(AxisZ, 1, TurnDouble), "2F2"},
		{NewCubeRotation(AxisX, TurnCW), "x"},
		{NewCubeRotation(AxisY, TurnCCW), "y'"},
		{NewCubeRotation(AxisZ, TurnDouble), "z2"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.want {
			t.Errorf("%+v Notation() = %q, want %q", c.move, got, c.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		size int
		want Move
	}{
		{"R", 3, NewFaceTurn(FaceR, TurnCW)},
		{"U'", 3, NewFaceTurn(FaceU, TurnCCW)},
		{"f2", 3, NewFaceTurn(FaceF, TurnDouble)},
		{"2U", 4, NewSliceTurn(AxisY, 1, TurnCW)},
		{"3R'", 5, NewSliceTurn(AxisX, 2, TurnCCW)},
		{"x", 3, NewCubeRotation(AxisX, TurnCW)},
		{"y2", 3, NewCubeRotation(AxisY, TurnDouble)},
		{"z'", 3, NewCubeRotation(AxisZ, TurnCCW)},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in, c.size)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseMove_NegativePoleSlice(t *testing.T) {
	// 2D on a 4x4 is the layer above D: layer 2 from U, direction flipped.
	got, err := ParseMove("2D", 4)
	if err != nil {
		t.Fatal(err)
	}
	want := NewSliceTurn(AxisY, 2, TurnCCW)
	if got != want {
		t.Errorf("ParseMove(2D) = %+v, want %+v", got, want)
	}

	// The two spellings must act identically.
	a := mustState(t, 4)
	b := mustState(t, 4)
	a.Apply(got)
	canonical, _ := ParseMove("3U'", 4)
	b.Apply(canonical)
	if !a.Equal(b) {
		t.Error("2D and 3U' should produce the same state on a 4x4")
	}
}

func TestParseMove_Invalid(t *testing.T) {
	bad := []string{"", "Q", "R3", "1U", "5U", "2x", "R''", "10", "x3"}
	for _, s := range bad {
		if _, err := ParseMove(s, 4); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}

func TestParseMoves_RoundTrip(t *testing.T) {
	in := "R U2 F' 2U 3R' x y' z2"
	moves, err := ParseMoves(in, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves round trip = %q, want %q", got, in)
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct {
		move Move
		want Move
	}{
		{NewFaceTurn(FaceR, TurnCW), NewFaceTurn(FaceR, TurnCCW)},
		{NewFaceTurn(FaceR, TurnCCW), NewFaceTurn(FaceR, TurnCW)},
		{NewFaceTurn(FaceR, TurnDouble), NewFaceTurn(FaceR, TurnDouble)},
		{NewSliceTurn(AxisZ, 1, TurnCW), NewSliceTurn(AxisZ, 1, TurnCCW)},
		{NewCubeRotation(AxisY, TurnCCW), NewCubeRotation(AxisY, TurnCW)},
	}
	for _, c := range cases {
		if got := c.move.Inverse(); got != c.want {
			t.Errorf("%v Inverse() = %v, want %v", c.move, got, c.want)
		}
	}
}

func TestInverseMoves_ReversesOrder(t *testing.T) {
	seq := []Move{R, U, FPrime}
	inv := InverseMoves(seq)
	want := []Move{F, UPrime, RPrime}
	if len(inv) != len(want) {
		t.Fatalf("len = %d, want %d", len(inv), len(want))
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("inv[%d] = %v, want %v", i, inv[i], want[i])
		}
	}
}
