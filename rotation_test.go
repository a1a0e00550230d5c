package cubik

import "testing"

func mustState(t *testing.T, size int) *State {
	t.Helper()
	s, err := NewState(size)
	if err != nil {
		t.Fatalf("NewState(%d): %v", size, err)
	}
	return s
}

func TestNewStateIsSolved(t *testing.T) {
	for size := 2; size <= 6; size++ {
		s := mustState(t, size)
		if !s.IsSolved() {
			t.Errorf("New %dx%d state should be solved", size, size)
		}
	}
}

func TestNewStateRejectsBadSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := NewState(size); err == nil {
			t.Errorf("NewState(%d) should fail", size)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := mustState(t, 3)
	s.RotateFace(FaceR, TurnCW)
	if s.IsSolved() {
		t.Error("State should not be solved after R move")
	}
}

func TestFourTurns_ReturnsToSolved_AllFacesAllSizes(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for _, face := range Faces {
			s := mustState(t, size)
			for i := 0; i < 4; i++ {
				if err := s.RotateFace(face, TurnCW); err != nil {
					t.Fatalf("size %d face %v: %v", size, face, err)
				}
			}
			if !s.IsSolved() {
				t.Errorf("size %d: %v x 4 should return to solved", size, face)
				t.Log(s.String())
			}
		}
	}
}

func TestTurnThenInverse_IsIdentity(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for _, face := range Faces {
			s := mustState(t, size)
			before := s.Clone()
			s.RotateFace(face, TurnCW)
			s.RotateFace(face, TurnCCW)
			if !s.Equal(before) {
				t.Errorf("size %d: %v %v' should be identity", size, face, face)
				t.Log(s.String())
			}
		}
	}
}

func TestDoubleTwice_ReturnsToSolved(t *testing.T) {
	s := mustState(t, 3)
	s.RotateFace(FaceR, TurnDouble)
	s.RotateFace(FaceR, TurnDouble)
	if !s.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(s.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity, on every size
	for size := 2; size <= 5; size++ {
		s := mustState(t, size)
		for i := 0; i < 6; i++ {
			s.RotateFace(FaceR, TurnCW)
			s.RotateFace(FaceU, TurnCW)
			s.RotateFace(FaceR, TurnCCW)
			s.RotateFace(FaceU, TurnCCW)
		}
		if !s.IsSolved() {
			t.Errorf("size %d: sexy move x 6 should return to solved", size)
			t.Log(s.String())
		}
	}
}

func TestUTurn_RowAssignments(t *testing.T) {
	// On a solved 3x3, U moves the front top row to the left face,
	// left to back, back to right, and right to front.
	s := mustState(t, 3)
	if err := s.RotateFace(FaceU, TurnCW); err != nil {
		t.Fatal(err)
	}

	wantTop := map[Face]Color{
		FaceF: Red,    // from R
		FaceL: Green,  // from F
		FaceB: Orange, // from L
		FaceR: Blue,   // from B
	}
	for face, want := range wantTop {
		for col := 0; col < 3; col++ {
			if got := s.At(face, 0, col); got != want {
				t.Errorf("%v top row col %d = %v, want %v", face, col, got, want)
			}
		}
		// Rows below the turned layer are untouched
		for row := 1; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if got := s.At(face, row, col); got != faceToSolvedColor(face) {
					t.Errorf("%v row %d col %d = %v, want untouched %v",
						face, row, col, got, faceToSolvedColor(face))
				}
			}
		}
	}
}

func TestFaceTurn_RotatesOwnGrid(t *testing.T) {
	s := mustState(t, 3)
	// Paint U with a recognizable pattern
	pattern := []Color{White, Yellow, Green, Blue, Red, Orange, White, Yellow, Green}
	copy(s.grids[FaceU], pattern)

	if err := s.RotateFace(FaceU, TurnCW); err != nil {
		t.Fatal(err)
	}

	// Clockwise: new[r][c] = old[2-c][r]
	want := []Color{
		White, Blue, White,
		Yellow, Red, Yellow,
		Green, Orange, Green,
	}
	for i, c := range want {
		if s.grids[FaceU][i] != c {
			t.Errorf("U grid cell %d = %v, want %v", i, s.grids[FaceU][i], c)
		}
	}
}

func TestSliceTurn_CyclesInnerBand(t *testing.T) {
	// Middle slice around Y on a 3x3: row 1 cycles F -> L -> B -> R.
	s := mustState(t, 3)
	if err := s.RotateSlice(AxisY, 1, TurnCW); err != nil {
		t.Fatal(err)
	}

	wantMiddle := map[Face]Color{
		FaceF: Red,
		FaceL: Green,
		FaceB: Orange,
		FaceR: Blue,
	}
	for face, want := range wantMiddle {
		for col := 0; col < 3; col++ {
			if got := s.At(face, 1, col); got != want {
				t.Errorf("%v middle row col %d = %v, want %v", face, col, got, want)
			}
		}
		// Outer rows untouched
		for _, row := range []int{0, 2} {
			for col := 0; col < 3; col++ {
				if got := s.At(face, row, col); got != faceToSolvedColor(face) {
					t.Errorf("%v row %d should be untouched, got %v", face, row, got)
				}
			}
		}
	}
	// U and D are not part of a Y slice
	for _, face := range []Face{FaceU, FaceD} {
		for i, c := range s.grids[face] {
			if c != faceToSolvedColor(face) {
				t.Errorf("%v cell %d changed during Y slice", face, i)
			}
		}
	}
}

func TestSliceTurn_FourTimes_Identity(t *testing.T) {
	for size := 3; size <= 5; size++ {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			for layer := 1; layer <= size-2; layer++ {
				s := mustState(t, size)
				for i := 0; i < 4; i++ {
					if err := s.RotateSlice(axis, layer, TurnCW); err != nil {
						t.Fatalf("size %d axis %v layer %d: %v", size, axis, layer, err)
					}
				}
				if !s.IsSolved() {
					t.Errorf("size %d axis %v layer %d x 4 should be identity", size, axis, layer)
					t.Log(s.String())
				}
			}
		}
	}
}

func TestSliceTurn_RejectsOuterLayers(t *testing.T) {
	s := mustState(t, 4)
	before := s.Clone()
	for _, layer := range []int{-1, 0, 3, 4} {
		if err := s.RotateSlice(AxisY, layer, TurnCW); err == nil {
			t.Errorf("layer %d should be rejected", layer)
		}
	}
	if !s.Equal(before) {
		t.Error("rejected slice turns must not mutate state")
	}
}

func TestWholeRotation_KeepsSolved(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			s := mustState(t, size)
			if err := s.RotateCube(axis, TurnCW); err != nil {
				t.Fatal(err)
			}
			if !s.IsSolved() {
				t.Errorf("size %d: whole-cube %v rotation must keep a solved cube solved", size, axis)
				t.Log(s.String())
			}
		}
	}
}

func TestWholeRotationY_RelabelsFaces(t *testing.T) {
	s := mustState(t, 3)
	if err := s.RotateCube(AxisY, TurnCW); err != nil {
		t.Fatal(err)
	}

	// The old right face now fronts the viewer.
	wantColor := map[Face]Color{
		FaceF: Red,
		FaceL: Green,
		FaceB: Orange,
		FaceR: Blue,
		FaceU: White,
		FaceD: Yellow,
	}
	for face, want := range wantColor {
		for i, c := range s.grids[face] {
			if c != want {
				t.Errorf("%v cell %d = %v, want %v", face, i, c, want)
				break
			}
		}
	}

	wantOrient := map[Face]Face{
		FaceF: FaceR,
		FaceR: FaceB,
		FaceB: FaceL,
		FaceL: FaceF,
		FaceU: FaceU,
		FaceD: FaceD,
	}
	for label, want := range wantOrient {
		if got := s.Orientation(label); got != want {
			t.Errorf("orientation[%v] = %v, want %v", label, got, want)
		}
	}
}

func TestWholeRotation_FourTimes_Identity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		s := mustState(t, 4)
		// Scramble a little first so identity is meaningful
		s.RotateFace(FaceR, TurnCW)
		s.RotateFace(FaceU, TurnCCW)
		s.RotateSlice(AxisZ, 1, TurnCW)
		before := s.Clone()
		for i := 0; i < 4; i++ {
			if err := s.RotateCube(axis, TurnCW); err != nil {
				t.Fatal(err)
			}
		}
		if !s.Equal(before) {
			t.Errorf("whole-cube %v x 4 should be identity", axis)
			t.Log(s.String())
		}
	}
}

func TestOrientationStaysBijective(t *testing.T) {
	s := mustState(t, 3)
	rotations := []struct {
		axis Axis
		turn Turn
	}{
		{AxisX, TurnCW}, {AxisY, TurnCCW}, {AxisZ, TurnDouble},
		{AxisY, TurnCW}, {AxisX, TurnCCW}, {AxisZ, TurnCW},
	}
	for _, r := range rotations {
		if err := s.RotateCube(r.axis, r.turn); err != nil {
			t.Fatal(err)
		}
		var seen [6]bool
		for _, label := range Faces {
			id := s.Orientation(label)
			if seen[id] {
				t.Fatalf("orientation not a bijection after %v %v", r.axis, r.turn)
			}
			seen[id] = true
		}
	}
}

func TestMixedSequence_FullReversibility(t *testing.T) {
	// Any sequence followed by its exact inverses in reverse order is
	// the identity on the full state, orientation map included.
	seq := []Move{
		NewFaceTurn(FaceR, TurnCW),
		NewSliceTurn(AxisY, 2, TurnCCW),
		NewFaceTurn(FaceB, TurnDouble),
		NewCubeRotation(AxisX, TurnCW),
		NewSliceTurn(AxisZ, 1, TurnCW),
		NewFaceTurn(FaceD, TurnCCW),
		NewCubeRotation(AxisY, TurnCCW),
		NewSliceTurn(AxisX, 2, TurnDouble),
		NewFaceTurn(FaceL, TurnCW),
	}
	s := mustState(t, 4)
	before := s.Clone()
	if err := s.ApplyMoves(seq); err != nil {
		t.Fatal(err)
	}
	if s.Equal(before) {
		t.Fatal("sequence should change the state")
	}
	if err := s.ApplyMoves(InverseMoves(seq)); err != nil {
		t.Fatal(err)
	}
	if !s.Equal(before) {
		t.Error("sequence + reversed inverses should restore the state exactly")
		t.Log(s.String())
	}
}

func TestRejectedMove_LeavesStateUntouched(t *testing.T) {
	s := mustState(t, 3)
	before := s.Clone()
	bad := []Move{
		{Kind: FaceTurn, Face: Face(9), Turn: TurnCW},
		{Kind: SliceTurn, Axis: Axis(7), Layer: 1, Turn: TurnCW},
		{Kind: SliceTurn, Axis: AxisY, Layer: 0, Turn: TurnCW},
		{Kind: CubeRotation, Axis: Axis(-1), Turn: TurnCW},
		{Kind: FaceTurn, Face: FaceU, Turn: Turn(5)},
		{Kind: MoveKind(42)},
	}
	for _, m := range bad {
		if err := s.Apply(m); err == nil {
			t.Errorf("move %+v should be rejected", m)
		}
	}
	if !s.Equal(before) {
		t.Error("rejected moves must not mutate state")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := mustState(t, 3)
	clone := s.Clone()
	s.RotateFace(FaceF, TurnCW)
	if !clone.IsSolved() {
		t.Error("mutating the original must not affect the clone")
	}
}
