package cubik

import (
	"fmt"
	"strings"
)

// Color represents a face color token.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor parses a single-letter color token.
func ParseColor(s string) (Color, error) {
	switch s {
	case "W":
		return White, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "R":
		return Red, nil
	case "O":
		return Orange, nil
	default:
		return 0, fmt.Errorf("%w: unknown color token %q", ErrBadSnapshot, s)
	}
}

// Face represents a cube face.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceD Face = 1 // Down (Yellow)
	FaceF Face = 2 // Front (Green)
	FaceB Face = 3 // Back (Blue)
	FaceR Face = 4 // Right (Red)
	FaceL Face = 5 // Left (Orange)
)

// Faces lists all six faces in storage order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceL
}

// ParseFace parses a face label (U, D, F, B, R, L).
func ParseFace(s string) (Face, error) {
	switch s {
	case "U":
		return FaceU, nil
	case "D":
		return FaceD, nil
	case "F":
		return FaceF, nil
	case "B":
		return FaceB, nil
	case "R":
		return FaceR, nil
	case "L":
		return FaceL, nil
	default:
		return 0, fmt.Errorf("%w: unknown face label %q", ErrBadSnapshot, s)
	}
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// State represents the sticker configuration of an NxNxN cube.
// Each face is an NxN grid stored row-major:
//
//	0      1      ... N-1
//	N      N+1    ... 2N-1
//	...
//	N(N-1) ...        N*N-1
//
// Row 0 is the top of the face as drawn in the unfolded net
// (U on top, then L F R B side by side, D at the bottom).
//
// The orientation map records which face identity currently sits under
// each logical label. It starts as the identity permutation and is
// changed only by whole-cube rotations.
type State struct {
	size   int
	grids  [6][]Color
	orient [6]Face
}

// NewState creates a solved cube state of the given size.
func NewState(size int) (*State, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	s := &State{size: size}
	for _, face := range Faces {
		grid := make([]Color, size*size)
		color := faceToSolvedColor(face)
		for i := range grid {
			grid[i] = color
		}
		s.grids[face] = grid
		s.orient[face] = face
	}
	return s, nil
}

// Size returns the cube dimension N.
func (s *State) Size() int {
	return s.size
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := &State{size: s.size, orient: s.orient}
	for f := 0; f < 6; f++ {
		grid := make([]Color, len(s.grids[f]))
		copy(grid, s.grids[f])
		clone.grids[f] = grid
	}
	return clone
}

// Equal reports whether two states have identical stickers and orientation.
func (s *State) Equal(other *State) bool {
	if other == nil || s.size != other.size || s.orient != other.orient {
		return false
	}
	for f := 0; f < 6; f++ {
		for i, c := range s.grids[f] {
			if other.grids[f][i] != c {
				return false
			}
		}
	}
	return true
}

// At returns the color at (row, col) of a face.
func (s *State) At(face Face, row, col int) Color {
	return s.grids[face][row*s.size+col]
}

// Grid returns a copy of one face's stickers in row-major order.
func (s *State) Grid(face Face) []Color {
	grid := make([]Color, len(s.grids[face]))
	copy(grid, s.grids[face])
	return grid
}

// Row returns a copy of one row of a face.
func (s *State) Row(face Face, row int) []Color {
	out := make([]Color, s.size)
	copy(out, s.grids[face][row*s.size:(row+1)*s.size])
	return out
}

// Orientation returns the face identity currently under a logical label.
func (s *State) Orientation(label Face) Face {
	return s.orient[label]
}

// IsSolved returns true if every face is internally uniform.
// Uniformity, not solved-color equality: a whole-cube rotation of a
// solved cube must still count as solved.
func (s *State) IsSolved() bool {
	for f := 0; f < 6; f++ {
		ref := s.grids[f][0]
		for _, c := range s.grids[f][1:] {
			if c != ref {
				return false
			}
		}
	}
	return true
}

// String returns an unfolded net of the cube.
func (s *State) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", s.size)

	// U face (indented)
	for row := 0; row < s.size; row++ {
		b.WriteString(indent)
		for col := 0; col < s.size; col++ {
			b.WriteString(s.At(FaceU, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < s.size; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < s.size; col++ {
				b.WriteString(s.At(face, row, col).String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < s.size; row++ {
		b.WriteString(indent)
		for col := 0; col < s.size; col++ {
			b.WriteString(s.At(FaceD, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
