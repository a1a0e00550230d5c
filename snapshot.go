package cubik

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion is the current persisted-state format version.
const SnapshotVersion = 1

// Snapshot is the persisted form of a cube state: six face grids as
// token strings, the orientation map, and a format version tag. It
// round-trips exactly through Restore / FromSnapshot.
type Snapshot struct {
	Version     int                 `json:"version"`
	Size        int                 `json:"size"`
	Faces       map[string][]string `json:"faces"`
	Orientation map[string]string   `json:"orientation"`
}

// Snapshot captures the current state of the cube.
func (c *Cube) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Snapshot captures a state into its persisted form.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Version:     SnapshotVersion,
		Size:        s.size,
		Faces:       make(map[string][]string, 6),
		Orientation: make(map[string]string, 6),
	}
	for _, face := range Faces {
		tokens := make([]string, len(s.grids[face]))
		for i, c := range s.grids[face] {
			tokens[i] = c.String()
		}
		snap.Faces[face.String()] = tokens
		snap.Orientation[face.String()] = s.orient[face].String()
	}
	return snap
}

// stateFromSnapshot validates a snapshot in full and builds a fresh
// State from it. Nothing live is touched: a malformed payload produces
// an error and no state.
func stateFromSnapshot(snap Snapshot) (*State, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, snap.Version)
	}
	if snap.Size < 2 {
		return nil, fmt.Errorf("%w: size %d", ErrBadSnapshot, snap.Size)
	}
	if len(snap.Faces) != 6 {
		return nil, fmt.Errorf("%w: expected 6 faces, got %d", ErrBadSnapshot, len(snap.Faces))
	}
	if len(snap.Orientation) != 6 {
		return nil, fmt.Errorf("%w: expected 6 orientation entries, got %d", ErrBadSnapshot, len(snap.Orientation))
	}

	state := &State{size: snap.Size}
	for _, face := range Faces {
		tokens, ok := snap.Faces[face.String()]
		if !ok {
			return nil, fmt.Errorf("%w: missing face %s", ErrBadSnapshot, face)
		}
		if len(tokens) != snap.Size*snap.Size {
			return nil, fmt.Errorf("%w: face %s has %d tokens, want %d",
				ErrBadSnapshot, face, len(tokens), snap.Size*snap.Size)
		}
		grid := make([]Color, len(tokens))
		for i, tok := range tokens {
			color, err := ParseColor(tok)
			if err != nil {
				return nil, err
			}
			grid[i] = color
		}
		state.grids[face] = grid
	}

	// The orientation map must be a permutation of the six labels.
	var seen [6]bool
	for _, label := range Faces {
		id, ok := snap.Orientation[label.String()]
		if !ok {
			return nil, fmt.Errorf("%w: missing orientation for %s", ErrBadSnapshot, label)
		}
		face, err := ParseFace(id)
		if err != nil {
			return nil, err
		}
		if seen[face] {
			return nil, fmt.Errorf("%w: orientation maps %s twice", ErrBadSnapshot, face)
		}
		seen[face] = true
		state.orient[label] = face
	}

	return state, nil
}

// FromSnapshot reconstructs a cube from a snapshot. The restored cube
// starts with an empty history.
func FromSnapshot(snap Snapshot, opts ...Option) (*Cube, error) {
	state, err := stateFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	cube, err := New(snap.Size, opts...)
	if err != nil {
		return nil, err
	}
	cube.state = state
	return cube, nil
}

// Restore replaces the cube's state with a snapshot of the same size
// and clears the history. The snapshot is validated in full before
// anything changes; a malformed payload leaves the cube untouched.
func (c *Cube) Restore(snap Snapshot) error {
	state, err := stateFromSnapshot(snap)
	if err != nil {
		return err
	}
	if state.size != c.size {
		return fmt.Errorf("%w: snapshot size %d does not match cube size %d",
			ErrBadSnapshot, state.size, c.size)
	}
	return c.mutate(func() ([]Move, error) {
		c.state = state
		c.history.Clear()
		return nil, nil
	})
}

// MarshalJSON encodes the snapshot of the cube state.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// UnmarshalJSON decodes and validates a snapshot into the state.
func (s *State) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	state, err := stateFromSnapshot(snap)
	if err != nil {
		return err
	}
	*s = *state
	return nil
}
