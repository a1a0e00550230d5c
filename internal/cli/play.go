package cli

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik"
	"github.com/Eggplant203/cubik/internal/render"
	"github.com/Eggplant203/cubik/internal/storage"
)

var playNoSave bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a cube interactively",
	Long: `Play a cube in the terminal.

Keys:
  u d l r f b    turn a face clockwise
  U D L R F B    turn a face counter-clockwise
  2-9 + face     turn an inner slice (e.g. 2u on a 4x4)
  arrows         rotate the whole cube (left/right: y, up/down: x)
  s / S          scramble / solve (rewind history)
  z / Z          undo / redo
  ctrl+r         reset
  q              quit (session is recorded)`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoSave, "no-save", false, "Do not record the session")
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type moveLogEntry struct {
	move cubik.Move
	at   time.Time
}

type playModel struct {
	cube *cubik.Cube
	size int

	// Pending slice depth typed before a face key
	depth int

	// Session log
	started   time.Time
	scramble  []cubik.Move
	moveLog   []moveLogEntry
	undoCount int

	solvedAt time.Time
	errMsg   string
	quitting bool
}

func newPlayModel(cube *cubik.Cube) *playModel {
	m := &playModel{
		cube:    cube,
		size:    cube.Size(),
		started: time.Now(),
	}
	cube.OnMove(func(mv cubik.Move) {
		m.moveLog = append(m.moveLog, moveLogEntry{move: mv, at: time.Now()})
	})
	cube.OnSolveComplete(func() {
		m.solvedAt = time.Now()
	})
	return m
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		return m, m.tickCmd()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.errMsg = ""
	key := keyMsg.String()

	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+r":
		m.report(m.cube.Reset())
		m.depth = 0
		return m, nil

	case "s":
		moves, err := m.cube.Scramble(scrambleCount(m.size))
		if err != nil {
			m.report(err)
		} else if len(m.scramble) == 0 {
			m.scramble = moves
		}
		m.depth = 0
		return m, nil

	case "S":
		m.report(m.cube.Solve())
		m.depth = 0
		return m, nil

	case "z":
		ok, err := m.cube.Undo()
		if ok {
			m.undoCount++
		}
		m.report(err)
		m.depth = 0
		return m, nil

	case "Z":
		_, err := m.cube.Redo()
		m.report(err)
		m.depth = 0
		return m, nil

	case "left":
		m.report(m.cube.RotateCube(cubik.AxisY, cubik.TurnCW))
		return m, nil
	case "right":
		m.report(m.cube.RotateCube(cubik.AxisY, cubik.TurnCCW))
		return m, nil
	case "up":
		m.report(m.cube.RotateCube(cubik.AxisX, cubik.TurnCW))
		return m, nil
	case "down":
		m.report(m.cube.RotateCube(cubik.AxisX, cubik.TurnCCW))
		return m, nil
	}

	// Slice depth prefix
	if len(key) == 1 && key[0] >= '2' && key[0] <= '9' {
		m.depth, _ = strconv.Atoi(key)
		return m, nil
	}

	if move, ok := m.keyToMove(key); ok {
		m.report(m.cube.Apply(move))
	}
	m.depth = 0
	return m, nil
}

// keyToMove translates a face key (with any pending depth prefix) into
// a move. Lowercase is clockwise, uppercase counter-clockwise.
func (m *playModel) keyToMove(key string) (cubik.Move, bool) {
	if len(key) != 1 {
		return cubik.Move{}, false
	}

	notation := key
	turn := ""
	if key[0] >= 'A' && key[0] <= 'Z' {
		notation = string(key[0] + 'a' - 'A')
		turn = "'"
	}
	if m.depth > 0 {
		notation = strconv.Itoa(m.depth) + notation
	}

	move, err := cubik.ParseMove(notation+turn, m.size)
	if err != nil {
		return cubik.Move{}, false
	}
	return move, true
}

// report stashes an operation error for the next View. ErrBusy is shown
// like any other rejection; nil clears nothing since errMsg was reset.
func (m *playModel) report(err error) {
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render(fmt.Sprintf("cubik %dx%d", m.size, m.size)) + "\n\n"
	s += render.Net(m.cube.State())
	s += "\n"

	elapsed := time.Since(m.started).Round(time.Second)
	status := fmt.Sprintf("time: %s  moves: %d  undo: %d  redo: %d  %s",
		elapsed, len(m.moveLog), m.cube.HistoryLen(), m.cube.RedoLen(),
		render.Orientation(m.cube.State()))
	s += statusStyle.Render(status) + "\n"

	if m.cube.IsSolved() {
		banner := "SOLVED"
		if !m.solvedAt.IsZero() && len(m.moveLog) > 0 {
			banner = fmt.Sprintf("SOLVED in %s", m.solvedAt.Sub(m.started).Round(time.Second))
		}
		s += solvedStyle.Render(banner) + "\n"
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n"
	}
	if m.depth > 0 {
		s += statusStyle.Render(fmt.Sprintf("slice depth %d ...", m.depth)) + "\n"
	}

	s += helpStyle.Render("u/d/l/r/f/b turn · shift: reverse · 2-9+face: slice · arrows: rotate · s/S scramble/solve · z/Z undo/redo · q quit")
	return s
}

// scrambleCount scales scramble length with cube size.
func scrambleCount(size int) int {
	if size <= 3 {
		return 25
	}
	return 20 * (size - 2)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube, err := cubik.New(cubeSize)
	if err != nil {
		return err
	}

	model := newPlayModel(cube)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if playNoSave || len(model.moveLog) == 0 {
		return nil
	}
	return saveSession(model)
}

// saveSession records a finished play session.
func saveSession(m *playModel) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	id, err := sessions.Create(m.size, cubik.FormatMoves(m.scramble))
	if err != nil {
		return err
	}

	movesRepo := storage.NewMoveRepository(db)
	for i, entry := range m.moveLog {
		tsMs := entry.at.Sub(m.started).Milliseconds()
		if _, err := movesRepo.Create(id, i, entry.move, tsMs); err != nil {
			return err
		}
	}

	snap, err := stateJSON(m.cube)
	if err != nil {
		return err
	}
	if err := sessions.End(id, m.cube.IsSolved(), len(m.moveLog), m.undoCount, snap); err != nil {
		return err
	}

	fmt.Printf("Recorded session %s (%d moves)\n", id, len(m.moveLog))
	return nil
}
