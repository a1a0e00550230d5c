package cubik

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	TurnCW     Turn = 1  // Clockwise (90 degrees)
	TurnCCW    Turn = -1 // Counter-clockwise (90 degrees)
	TurnDouble Turn = 2  // Half turn (180 degrees)
)

// Valid reports whether t is a known turn.
func (t Turn) Valid() bool {
	return t == TurnCW || t == TurnCCW || t == TurnDouble
}

// MoveKind distinguishes the three move families.
type MoveKind int

const (
	FaceTurn     MoveKind = 0 // outer face turn
	SliceTurn    MoveKind = 1 // inner layer turn
	CubeRotation MoveKind = 2 // whole-cube reorientation
)

// Move represents a single cube move. Face is set for face turns;
// Axis (and Layer for slices) for the other two kinds. Moves are
// immutable values.
type Move struct {
	Kind  MoveKind
	Face  Face
	Axis  Axis
	Layer int
	Turn  Turn
}

// NewFaceTurn builds an outer face turn.
func NewFaceTurn(face Face, turn Turn) Move {
	return Move{Kind: FaceTurn, Face: face, Turn: turn}
}

// NewSliceTurn builds an inner layer turn. Layer counts from the axis's
// positive pole (R, U or F); valid layers are 1..N-2.
func NewSliceTurn(axis Axis, layer int, turn Turn) Move {
	return Move{Kind: SliceTurn, Axis: axis, Layer: layer, Turn: turn}
}

// NewCubeRotation builds a whole-cube reorientation.
func NewCubeRotation(axis Axis, turn Turn) Move {
	return Move{Kind: CubeRotation, Axis: axis, Turn: turn}
}

// Inverse returns the inverse of this move: same move, opposite turn.
// Double turns are their own inverse.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// TurnDouble is its own inverse
	}
	return inv
}

// turnSuffix returns the notation suffix for a turn.
func turnSuffix(t Turn) string {
	switch t {
	case TurnCCW:
		return "'"
	case TurnDouble:
		return "2"
	}
	return ""
}

// Notation returns the notation string for this move.
// Face turns use standard notation (R, R', R2). Slice turns are written
// against the axis's positive pole face with a depth prefix: 2U is the
// layer directly under U, 3R the third layer in from R. Whole-cube
// rotations use x, y, z.
func (m Move) Notation() string {
	switch m.Kind {
	case FaceTurn:
		return m.Face.String() + turnSuffix(m.Turn)
	case SliceTurn:
		pole := axisPoles[m.Axis][0]
		return strconv.Itoa(m.Layer+1) + pole.String() + turnSuffix(m.Turn)
	case CubeRotation:
		return m.Axis.String() + turnSuffix(m.Turn)
	default:
		return "?"
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// parseTurnSuffix parses the trailing part of a notation token.
func parseTurnSuffix(s string) (Turn, error) {
	switch s {
	case "":
		return TurnCW, nil
	case "'", "`":
		return TurnCCW, nil
	case "2":
		return TurnDouble, nil
	case "2'", "2`":
		return TurnDouble, nil
	default:
		return 0, ErrInvalidNotation
	}
}

// ParseMove parses a notation string into a Move for a cube of the
// given size. Examples: R, U', F2, 2U, 3R', x, y2.
//
// Depth-prefixed slices may name either pole face: 2D on a 4x4 is the
// layer directly above D, equivalent to 3U'. Parsed moves are
// canonicalized to the positive pole.
func ParseMove(s string, size int) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Whole-cube rotations
	switch s[0] {
	case 'x', 'y', 'z':
		axis := map[byte]Axis{'x': AxisX, 'y': AxisY, 'z': AxisZ}[s[0]]
		turn, err := parseTurnSuffix(s[1:])
		if err != nil {
			return Move{}, err
		}
		return NewCubeRotation(axis, turn), nil
	}

	// Optional slice depth prefix
	depth := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		depth = depth*10 + int(s[i]-'0')
		i++
	}
	if i == len(s) {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[i] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	turn, err := parseTurnSuffix(s[i+1:])
	if err != nil {
		return Move{}, err
	}

	if i == 0 {
		return NewFaceTurn(face, turn), nil
	}

	// Depth-prefixed slice: canonicalize to the axis's positive pole.
	if depth < 2 || depth > size-1 {
		return Move{}, fmt.Errorf("%w: slice depth %d on size %d", ErrInvalidNotation, depth, size)
	}
	fa := faceAxes[face]
	layer := depth - 1
	if !fa.positive {
		layer = size - depth
		turn = NewFaceTurn(face, turn).Inverse().Turn
	}
	return NewSliceTurn(fa.axis, layer, turn), nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' 2U x"
// Returns an error on the first invalid token.
func ParseMoves(s string, size int) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part, size)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the move sequence that undoes moves, i.e. the
// inverses in reverse order.
func InverseMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
