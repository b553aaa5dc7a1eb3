// Package tui is the interactive grid editor behind `gridpath play`.
//
// The grid is drawn two terminal columns per cell. Every edit (toggling an
// obstacle, moving an endpoint, switching algorithm) re-runs the search and
// redraws the visited cells and path.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

const (
	// cellWidth is the number of terminal columns per grid cell.
	cellWidth = 2
	// gridTop is the screen row of the first grid row (below the header).
	gridTop = 1
)

// Cell colours follow the classic A* demo palette.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	openStyle     = lipgloss.NewStyle().Background(lipgloss.Color("255"))
	obstacleStyle = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	visitedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("245"))
	pathStyle     = lipgloss.NewStyle().Background(lipgloss.Color("46"))
	startStyle    = lipgloss.NewStyle().Background(lipgloss.Color("21"))
	goalStyle     = lipgloss.NewStyle().Background(lipgloss.Color("196"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Model is the bubbletea model of the grid editor.
type Model struct {
	sc       *scenario.Scenario
	opts     []search.Option
	logger   *zap.Logger
	cursor   gridgraph.Point
	result   *search.Result
	blockers int // obstacles on the cheapest detour when unreachable
	err      error
	quitting bool

	keys keyMap
	help help.Model
}

// NewModel creates an editor over sc and runs the first search.
// The scenario's grid and endpoints are edited in place.
func NewModel(sc *scenario.Scenario, logger *zap.Logger, opts ...search.Option) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		sc:     sc,
		opts:   append(append([]search.Option(nil), opts...), search.WithLogger(logger)),
		logger: logger,
		cursor: sc.Start,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.research()

	return m
}

// Init implements tea.Model. Mouse reporting is enabled by the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Toggle):
		m.toggle(m.cursor)
	case key.Matches(msg, m.keys.Start):
		m.sc.Start = m.cursor
		m.research()
	case key.Matches(msg, m.keys.Goal):
		m.sc.Goal = m.cursor
		m.research()
	case key.Matches(msg, m.keys.Algorithm):
		algs := search.Algorithms()
		m.sc.Algorithm = algs[(int(m.sc.Algorithm)+1)%len(algs)]
		m.research()
	case key.Matches(msg, m.keys.Clear):
		m.sc.Grid.Clear()
		m.research()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse toggles the obstacle under a released left button.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m
	}
	p, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m
	}
	m.cursor = p
	m.toggle(p)

	return m
}

// cellAt maps a screen position to a grid cell.
func (m Model) cellAt(x, y int) (gridgraph.Point, bool) {
	if x < 0 || y < gridTop {
		return gridgraph.Point{}, false
	}
	p := gridgraph.Point{X: x / cellWidth, Y: y - gridTop}

	return p, m.sc.Grid.InBounds(p)
}

func (m *Model) moveCursor(dx, dy int) {
	next := gridgraph.Point{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if m.sc.Grid.InBounds(next) {
		m.cursor = next
	}
}

func (m *Model) toggle(p gridgraph.Point) {
	if err := m.sc.Grid.ToggleObstacle(p); err != nil {
		m.err = err
		return
	}
	m.research()
}

// research re-runs the search and, when the goal is cut off, counts the
// obstacles on the cheapest detour.
func (m *Model) research() {
	res, err := m.sc.Run(m.opts...)
	m.result, m.err, m.blockers = res, err, 0
	if err != nil {
		m.logger.Warn("search failed", zap.Error(err))
		return
	}
	if !res.Reachable {
		if _, cost, err := m.sc.Grid.MinClearance(m.sc.Start, m.sc.Goal); err == nil {
			m.blockers = cost
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("gridpath  %d×%d  %s",
		m.sc.Grid.Width(), m.sc.Grid.Height(), m.sc.Algorithm)))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderGrid() string {
	g := m.sc.Grid
	onPath := make(map[gridgraph.Point]bool)
	if m.result != nil {
		for _, p := range m.result.Path {
			onPath[p] = true
		}
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := gridgraph.Point{X: x, Y: y}
			idx, _ := g.Index(p)
			style := openStyle
			switch {
			case p == m.sc.Start:
				style = startStyle
			case p == m.sc.Goal:
				style = goalStyle
			case g.Blocked(idx):
				style = obstacleStyle
			case onPath[p]:
				style = pathStyle
			case m.result != nil && m.result.Visited(idx):
				style = visitedStyle
			}
			glyph := strings.Repeat(" ", cellWidth)
			if p == m.cursor {
				glyph = "[]"
				style = style.Inherit(cursorStyle)
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	res := m.result
	parts := []string{
		labelStyle.Render("cursor ") + valueStyle.Render(m.cursor.String()),
		labelStyle.Render("expanded ") + valueStyle.Render(fmt.Sprint(res.Expanded)),
	}
	if res.Reachable {
		parts = append(parts,
			labelStyle.Render("hops ")+valueStyle.Render(fmt.Sprint(res.Hops())),
			labelStyle.Render("cost ")+valueStyle.Render(fmt.Sprintf("%.1f", res.Cost())),
		)
	} else {
		parts = append(parts, errorStyle.Render("unreachable"),
			dimStyle.Render(fmt.Sprintf("(remove %d obstacle(s) to connect)", m.blockers)))
	}

	return strings.Join(parts, "  ")
}

// Run starts the editor on the terminal and blocks until the user quits.
func Run(sc *scenario.Scenario, logger *zap.Logger, opts ...search.Option) error {
	p := tea.NewProgram(NewModel(sc, logger, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()

	return err
}
