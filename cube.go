package cubik

import (
	"fmt"
	"math/rand"
	"sync"
)

// Cube owns the cube state, move history and notification hooks, and
// serializes all mutating operations. It is the surface consumed by
// rendering and UI collaborators.
//
//	cube, err := cubik.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.OnMove(func(m cubik.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//
//	cube.Apply(cubik.R, cubik.U, cubik.RPrime, cubik.UPrime)
//	fmt.Println("Solved:", cube.IsSolved())
type Cube struct {
	mu   sync.Mutex
	busy bool

	size    int
	state   *State
	history *History
	rng     *rand.Rand

	onMove          func(Move)
	onSolveComplete func()
}

// New creates a solved cube of the given size (N >= 2).
func New(size int, opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	state, err := NewState(size)
	if err != nil {
		return nil, err
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Cube{
		size:    size,
		state:   state,
		history: NewHistory(cfg.historyLimit),
		rng:     rng,
	}, nil
}

// Size returns the cube dimension N.
func (c *Cube) Size() int {
	return c.size
}

// OnMove sets a callback fired after every applied move, including
// scramble moves and undo/redo replays. The callback runs outside the
// engine lock; mutating the cube from inside it is rejected with ErrBusy.
func (c *Cube) OnMove(cb func(Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = cb
}

// OnSolveComplete sets a callback fired once whenever a mutating
// operation leaves the cube solved.
func (c *Cube) OnSolveComplete(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSolveComplete = cb
}

// mutate runs op with the engine locked and busy. op returns the moves
// it applied, which are reported through OnMove after the lock is
// released. A call arriving while another is in flight (including from
// inside a callback) fails with ErrBusy and touches nothing.
func (c *Cube) mutate(op func() ([]Move, error)) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	applied, err := op()
	solved := err == nil && len(applied) > 0 && c.state.IsSolved()
	onMove, onSolved := c.onMove, c.onSolveComplete
	c.mu.Unlock()

	if err == nil && onMove != nil {
		for _, m := range applied {
			onMove(m)
		}
	}
	if solved && onSolved != nil {
		onSolved()
	}

	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
	return err
}

// applyAndRecord validates and applies one move, then records it.
// Must be called with the engine locked.
func (c *Cube) applyAndRecord(m Move) error {
	if err := c.state.Apply(m); err != nil {
		return err
	}
	c.history.Append(m)
	return nil
}

// RotateFace turns an outer face.
func (c *Cube) RotateFace(face Face, turn Turn) error {
	m := NewFaceTurn(face, turn)
	return c.mutate(func() ([]Move, error) {
		if err := c.applyAndRecord(m); err != nil {
			return nil, err
		}
		return []Move{m}, nil
	})
}

// RotateSlice turns an inner layer. The layer counts from the axis's
// positive pole; valid layers are 1..N-2.
func (c *Cube) RotateSlice(axis Axis, layer int, turn Turn) error {
	m := NewSliceTurn(axis, layer, turn)
	return c.mutate(func() ([]Move, error) {
		if err := c.applyAndRecord(m); err != nil {
			return nil, err
		}
		return []Move{m}, nil
	})
}

// RotateCube reorients the whole cube.
func (c *Cube) RotateCube(axis Axis, turn Turn) error {
	m := NewCubeRotation(axis, turn)
	return c.mutate(func() ([]Move, error) {
		if err := c.applyAndRecord(m); err != nil {
			return nil, err
		}
		return []Move{m}, nil
	})
}

// Apply applies a sequence of moves as user-issued moves. The whole
// sequence is validated before anything mutates, so an invalid move
// leaves state and history untouched.
func (c *Cube) Apply(moves ...Move) error {
	return c.mutate(func() ([]Move, error) {
		for _, m := range moves {
			if err := validateMove(m, c.size); err != nil {
				return nil, err
			}
		}
		for _, m := range moves {
			if err := c.applyAndRecord(m); err != nil {
				return nil, err
			}
		}
		return moves, nil
	})
}

// ApplyNotation parses a notation string and applies it.
// Example: cube.ApplyNotation("R U R' U' 2F x")
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s, c.size)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// validateMove checks a move's own fields against the cube size without
// touching any state.
func validateMove(m Move, size int) error {
	switch m.Kind {
	case FaceTurn:
		if !m.Face.Valid() {
			return fmt.Errorf("%w: unknown face %d", ErrInvalidMove, int(m.Face))
		}
	case SliceTurn:
		if !m.Axis.Valid() {
			return fmt.Errorf("%w: unknown axis %d", ErrInvalidMove, int(m.Axis))
		}
		if m.Layer < 1 || m.Layer > size-2 {
			return fmt.Errorf("%w: slice layer %d outside [1, %d]", ErrInvalidMove, m.Layer, size-2)
		}
	case CubeRotation:
		if !m.Axis.Valid() {
			return fmt.Errorf("%w: unknown axis %d", ErrInvalidMove, int(m.Axis))
		}
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrInvalidMove, int(m.Kind))
	}
	if !m.Turn.Valid() {
		return fmt.Errorf("%w: unknown turn %d", ErrInvalidMove, int(m.Turn))
	}
	return nil
}

// Scramble applies count random moves through the normal move path and
// returns them. Face turns only for sizes up to 3; larger cubes draw
// slice turns half the time.
func (c *Cube) Scramble(count int) ([]Move, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative scramble count %d", ErrInvalidMove, count)
	}
	var out []Move
	err := c.mutate(func() ([]Move, error) {
		moves := make([]Move, 0, count)
		for i := 0; i < count; i++ {
			m := c.randomMove()
			if err := c.applyAndRecord(m); err != nil {
				return nil, err
			}
			moves = append(moves, m)
		}
		out = moves
		return moves, nil
	})
	return out, err
}

// randomMove draws one scramble move. No filtering of immediately
// cancelling pairs is done.
func (c *Cube) randomMove() Move {
	turn := TurnCW
	if c.rng.Intn(2) == 1 {
		turn = TurnCCW
	}
	if c.size > 3 && c.rng.Intn(2) == 1 {
		axis := Axis(c.rng.Intn(3))
		layer := 1 + c.rng.Intn(c.size-2)
		return NewSliceTurn(axis, layer, turn)
	}
	face := Faces[c.rng.Intn(len(Faces))]
	return NewFaceTurn(face, turn)
}

// Undo reverts the most recent applied move. Returns false with a nil
// error when there is nothing to undo.
func (c *Cube) Undo() (bool, error) {
	var ok bool
	err := c.mutate(func() ([]Move, error) {
		m, has := c.history.Undo()
		if !has {
			return nil, nil
		}
		inv := m.Inverse()
		if err := c.state.Apply(inv); err != nil {
			return nil, err
		}
		ok = true
		return []Move{inv}, nil
	})
	return ok, err
}

// Redo replays the next undone move. Returns false with a nil error
// when there is nothing to redo.
func (c *Cube) Redo() (bool, error) {
	var ok bool
	err := c.mutate(func() ([]Move, error) {
		m, has := c.history.Redo()
		if !has {
			return nil, nil
		}
		if err := c.state.Apply(m); err != nil {
			return nil, err
		}
		ok = true
		return []Move{m}, nil
	})
	return ok, err
}

// Solve replays the inverse of the recorded history in reverse order,
// returning the cube to the state before those moves, then clears the
// history. It is an exact history rewind, not a solver: a cube with
// moves missing from history stays unsolved.
func (c *Cube) Solve() error {
	return c.mutate(func() ([]Move, error) {
		replay := InverseMoves(c.history.Applied())
		for _, m := range replay {
			if err := c.state.Apply(m); err != nil {
				return nil, err
			}
		}
		c.history.Clear()
		return replay, nil
	})
}

// Reset reinitializes the cube to the solved state and clears history.
func (c *Cube) Reset() error {
	return c.mutate(func() ([]Move, error) {
		state, err := NewState(c.size)
		if err != nil {
			return nil, err
		}
		c.state = state
		c.history.Clear()
		return nil, nil
	})
}

// IsSolved returns true if every face is internally uniform.
func (c *Cube) IsSolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.IsSolved()
}

// State returns a deep copy of the current cube state. Callers can
// inspect it freely without affecting the engine.
func (c *Cube) State() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// HistoryLen returns the number of undoable moves.
func (c *Cube) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Len()
}

// RedoLen returns the number of redoable moves.
func (c *Cube) RedoLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.RedoLen()
}

// Moves returns a copy of the applied move history, oldest first.
func (c *Cube) Moves() []Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Applied()
}
