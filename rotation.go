package cubik

import "fmt"

// Axis represents a rotation axis.
type Axis int

const (
	AxisX Axis = 0 // Right-Left axis, positive pole at R
	AxisY Axis = 1 // Up-Down axis, positive pole at U
	AxisZ Axis = 2 // Front-Back axis, positive pole at F
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of the three axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// band describes one face's strip of cells affected when a layer turns
// around an axis. The same descriptor serves every cube size and every
// layer: the concrete cell indices are computed from (N, layer) when the
// turn is applied.
type band struct {
	face     Face
	col      bool // column strip instead of row strip
	farSide  bool // strip N-1-layer instead of layer
	reversed bool // traverse cells high-to-low
}

// indices returns the flat cell indices of a band, in traversal order.
func (b band) indices(size, layer int) []int {
	line := layer
	if b.farSide {
		line = size - 1 - layer
	}
	out := make([]int, size)
	for i := 0; i < size; i++ {
		j := i
		if b.reversed {
			j = size - 1 - i
		}
		if b.col {
			out[i] = j*size + line
		} else {
			out[i] = line*size + j
		}
	}
	return out
}

// axisCycles maps each axis to the four bands a layer turn cycles through.
// Stickers flow cycle[0] -> cycle[1] -> cycle[2] -> cycle[3] -> cycle[0]
// for a clockwise turn viewed from the axis's positive pole. Layer 0 is
// the layer touching the positive pole face.
//
// The traversal order of each band matters only relative to the other
// three: all four must walk the physical sticker ring in the same
// direction, which is what the farSide/reversed flags encode (the back
// face's grid is mirrored relative to the front in the unfolded net).
var axisCycles = [3][4]band{
	AxisX: {
		{face: FaceU, col: true, farSide: true},
		{face: FaceB, col: true, reversed: true},
		{face: FaceD, col: true, farSide: true},
		{face: FaceF, col: true, farSide: true},
	},
	AxisY: {
		{face: FaceF},
		{face: FaceL},
		{face: FaceB},
		{face: FaceR},
	},
	AxisZ: {
		{face: FaceU, farSide: true},
		{face: FaceR, col: true},
		{face: FaceD, reversed: true},
		{face: FaceL, col: true, farSide: true, reversed: true},
	},
}

// positive pole face and negative pole face per axis.
var axisPoles = [3][2]Face{
	AxisX: {FaceR, FaceL},
	AxisY: {FaceU, FaceD},
	AxisZ: {FaceF, FaceB},
}

// faceAxes maps each face to its axis and whether it sits at the
// positive pole. Turning a negative-pole face clockwise (viewed from
// outside that face) is a counter-clockwise layer turn around the axis.
var faceAxes = [6]struct {
	axis     Axis
	positive bool
}{
	FaceU: {AxisY, true},
	FaceD: {AxisY, false},
	FaceF: {AxisZ, true},
	FaceB: {AxisZ, false},
	FaceR: {AxisX, true},
	FaceL: {AxisX, false},
}

// steps converts a Turn into the number of quarter-turn cycle shifts.
func steps(t Turn) int {
	switch t {
	case TurnCW:
		return 1
	case TurnCCW:
		return 3
	case TurnDouble:
		return 2
	default:
		return 0
	}
}

// turnLayer applies one layer turn around an axis. All four source bands
// are snapshotted before any cell is written: several bands can live on
// faces that also receive writes, and sequential assignment would read
// already-overwritten cells.
func (s *State) turnLayer(axis Axis, layer, shift int) {
	cycle := axisCycles[axis]

	var snap [4][]Color
	for i, b := range cycle {
		idx := b.indices(s.size, layer)
		vals := make([]Color, s.size)
		for j, cell := range idx {
			vals[j] = s.grids[b.face][cell]
		}
		snap[i] = vals
	}

	for i, b := range cycle {
		src := snap[(i+4-shift)%4]
		for j, cell := range b.indices(s.size, layer) {
			s.grids[b.face][cell] = src[j]
		}
	}
}

// rotateGrid rotates one face's own NxN matrix by shift quarter turns
// clockwise, as seen from outside that face.
func (s *State) rotateGrid(face Face, shift int) {
	shift = ((shift % 4) + 4) % 4
	if shift == 0 {
		return
	}
	n := s.size
	old := make([]Color, n*n)
	copy(old, s.grids[face])
	grid := s.grids[face]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch shift {
			case 1: // new[r][c] = old[n-1-c][r]
				grid[r*n+c] = old[(n-1-c)*n+r]
			case 2:
				grid[r*n+c] = old[(n-1-r)*n+(n-1-c)]
			case 3:
				grid[r*n+c] = old[c*n+(n-1-r)]
			}
		}
	}
}

// RotateFace turns an outer face: the face's own grid rotates and the
// touching strip of each of the four neighboring faces cycles.
// State is unchanged if the move is invalid.
func (s *State) RotateFace(face Face, turn Turn) error {
	if !face.Valid() {
		return fmt.Errorf("%w: unknown face %d", ErrInvalidMove, int(face))
	}
	if !turn.Valid() {
		return fmt.Errorf("%w: unknown turn %d", ErrInvalidMove, int(turn))
	}
	fa := faceAxes[face]
	shift := steps(turn)
	layer := 0
	if !fa.positive {
		layer = s.size - 1
		shift = 4 - shift
	}
	s.turnLayer(fa.axis, layer, shift%4)
	s.rotateGrid(face, steps(turn))
	return nil
}

// RotateSlice turns an inner layer. The layer index counts from the
// axis's positive pole; 0 and N-1 coincide with outer face turns and
// are rejected here, use RotateFace for those.
// Clockwise is viewed from the positive pole.
func (s *State) RotateSlice(axis Axis, layer int, turn Turn) error {
	if !axis.Valid() {
		return fmt.Errorf("%w: unknown axis %d", ErrInvalidMove, int(axis))
	}
	if !turn.Valid() {
		return fmt.Errorf("%w: unknown turn %d", ErrInvalidMove, int(turn))
	}
	if layer < 1 || layer > s.size-2 {
		return fmt.Errorf("%w: slice layer %d outside [1, %d]", ErrInvalidMove, layer, s.size-2)
	}
	s.turnLayer(axis, layer, steps(turn))
	return nil
}

// RotateCube reorients the whole cube around an axis: every layer turns
// together, the two pole grids spin in place, and the orientation map is
// relabeled. The solved-relative configuration is unchanged.
func (s *State) RotateCube(axis Axis, turn Turn) error {
	if !axis.Valid() {
		return fmt.Errorf("%w: unknown axis %d", ErrInvalidMove, int(axis))
	}
	if !turn.Valid() {
		return fmt.Errorf("%w: unknown turn %d", ErrInvalidMove, int(turn))
	}
	shift := steps(turn)
	for layer := 0; layer < s.size; layer++ {
		s.turnLayer(axis, layer, shift)
	}
	poles := axisPoles[axis]
	s.rotateGrid(poles[0], shift)
	s.rotateGrid(poles[1], 4-shift)

	// Relabel: the identity under cycle[i+1] is what was under cycle[i].
	cycle := axisCycles[axis]
	old := s.orient
	for i := range cycle {
		from := cycle[(i+4-shift)%4].face
		s.orient[cycle[i].face] = old[from]
	}
	return nil
}

// Apply dispatches a Move to the matching rotation. Validation happens
// before any mutation.
func (s *State) Apply(m Move) error {
	switch m.Kind {
	case FaceTurn:
		return s.RotateFace(m.Face, m.Turn)
	case SliceTurn:
		return s.RotateSlice(m.Axis, m.Layer, m.Turn)
	case CubeRotation:
		return s.RotateCube(m.Axis, m.Turn)
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrInvalidMove, int(m.Kind))
	}
}

// ApplyMoves applies a sequence of moves, stopping at the first invalid one.
func (s *State) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := s.Apply(m); err != nil {
			return err
		}
	}
	return nil
}
