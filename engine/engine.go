/*
Package engine drives the maze animation as a bubbletea program.

The model owns the whole lifecycle: size the maze to the terminal, animate
construction one BuildNext per tick, release agents one by one to solve it,
and start over with a fresh maze and freshly rolled styles once every agent
has escaped. Resizing discards the maze and agents and regenerates at the
new dimensions; q, Esc and Ctrl-C quit.
*/
package engine

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/beka-birhanu/mazer/agent"
	"github.com/beka-birhanu/mazer/core/i"
	"github.com/beka-birhanu/mazer/maze"
	"github.com/beka-birhanu/mazer/render"
)

type phase int

const (
	phaseBuilding phase = iota
	phaseSolving
)

// spawnInterval is the number of solving frames between agent releases.
const spawnInterval = 63

type tickMsg time.Time

// Options configures a Model.
type Options struct {
	Rand        i.Randomizer
	Log         *logrus.Logger
	Wait        time.Duration // delay between frames; 0 renders flat out
	Interactive bool          // advance one frame per keypress instead
	Agents      int           // number of solver agents per maze
	MazeStyle   int           // index into render.Styles; negative rolls per maze
	AgentStyle  int           // index into render.AgentStyles; negative rolls per maze
	Color       int           // palette index; negative rolls per maze
	Palette     [8]string
}

// Model is the bubbletea model animating maze generation and solving.
type Model struct {
	opts Options
	rand i.Randomizer
	log  *logrus.Logger

	termWidth  int
	termHeight int

	maze       *maze.Maze
	agents     []*agent.Agent
	active     int
	frames     int
	phase      phase
	style      render.Style
	agentStyle render.AgentStyle

	screen   *Screen
	renderer *render.Renderer
	view     string
	err      error
}

// New returns a model; the first WindowSizeMsg from bubbletea triggers the
// initial maze build.
func New(opts Options) *Model {
	if opts.Agents < 1 {
		opts.Agents = 1
	}
	return &Model{
		opts: opts,
		rand: opts.Rand,
		log:  opts.Log,
	}
}

// Err returns the render error that aborted the run, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.Interactive {
		return nil
	}
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			if m.opts.Interactive {
				m.step()
				m.redraw()
				if m.err != nil {
					return m, tea.Quit
				}
			}
		}

	case tea.WindowSizeMsg:
		m.restart(msg.Width, msg.Height)
		m.redraw()

	case tickMsg:
		m.step()
		m.redraw()
		if m.err != nil {
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.view
}

func (m *Model) tick() tea.Cmd {
	wait := m.opts.Wait
	if wait <= 0 {
		wait = time.Millisecond
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// restart discards any maze and agents and begins a new generation sized
// to the given terminal dimensions. Styles, color and hedge seed are
// re-rolled unless pinned by options.
func (m *Model) restart(termWidth, termHeight int) {
	m.termWidth = termWidth
	m.termHeight = termHeight

	width := max(termWidth/2-1, 1)
	height := max(termHeight/2-1, 1)

	mz, err := maze.New(width, height)
	if err != nil {
		// Unreachable: dimensions are clamped to at least 1x1.
		m.err = err
		return
	}
	m.maze = mz
	m.agents = nil
	m.active = 0
	m.frames = 0
	m.phase = phaseBuilding

	styleIdx := m.opts.MazeStyle
	if styleIdx < 0 {
		styleIdx = m.rand.Intn(len(render.Styles))
	}
	color := m.opts.Color
	if color < 0 {
		color = 1 + m.rand.Intn(7)
	}
	m.style = render.Styles[styleIdx%len(render.Styles)].WithColor(uint8(color % 8))

	agentStyleIdx := m.opts.AgentStyle
	if agentStyleIdx < 0 {
		agentStyleIdx = m.rand.Intn(len(render.AgentStyles))
	}
	m.agentStyle = render.AgentStyles[agentStyleIdx%len(render.AgentStyles)]

	bmpWidth, bmpHeight := mz.BitmapSize()
	m.screen = NewScreen(bmpWidth, bmpHeight, m.opts.Palette)
	seed := uint64(m.rand.Intn(1<<31))<<32 | uint64(m.rand.Intn(1<<31))
	m.renderer = render.New(m.screen, seed)

	if m.log != nil {
		m.log.WithFields(logrus.Fields{
			"width":  width,
			"height": height,
		}).Info("maze generation started")
	}
}

// step advances the animation by one frame: one construction step while
// building, one transition per active agent while solving.
func (m *Model) step() {
	if m.maze == nil {
		return
	}

	switch m.phase {
	case phaseBuilding:
		if m.maze.BuildNext(m.rand) {
			return
		}
		m.spawnAgents()
		m.phase = phaseSolving
		if m.log != nil {
			m.log.WithField("agents", len(m.agents)).Info("maze complete, solving")
		}

	case phaseSolving:
		for _, a := range m.agents[:m.active] {
			halted := a.Halted()
			a.Update(m.rand)
			if !halted && a.Halted() && m.log != nil {
				m.log.WithField("agent", a.ID()).Info("agent escaped")
			}
		}

		m.frames++
		if m.frames%spawnInterval == 0 && m.active < len(m.agents) {
			m.active++
		}

		if m.active == len(m.agents) && m.allHalted() {
			m.restart(m.termWidth, m.termHeight)
		}
	}
}

func (m *Model) spawnAgents() {
	m.agents = make([]*agent.Agent, 0, m.opts.Agents)
	for k := 0; k < m.opts.Agents; k++ {
		m.agents = append(m.agents, agent.New(m.maze, uint8((k+1)%8)))
	}
	m.rand.Shuffle(len(m.agents), func(i, j int) {
		m.agents[i], m.agents[j] = m.agents[j], m.agents[i]
	})
	m.active = 1
	m.frames = 0
}

func (m *Model) allHalted() bool {
	for _, a := range m.agents {
		if !a.Halted() {
			return false
		}
	}
	return true
}

// redraw renders the current state into the screen buffer and caches the
// frame string View hands to bubbletea. A write error is fatal to the run.
func (m *Model) redraw() {
	if m.maze == nil || m.err != nil {
		return
	}

	m.screen.Clear()

	var agents []*agent.Agent
	if m.phase == phaseSolving {
		agents = m.agents[:m.active]
	}

	if err := m.renderer.Render(m.maze, m.style, agents, m.agentStyle); err != nil {
		m.err = err
		return
	}
	m.view = m.screen.View()
}
