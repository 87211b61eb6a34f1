package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/springsim/internal/physics"
)

const (
	DefaultFPS      = 60
	DefaultWidth    = 80
	DefaultHeight   = 30
	historyCapacity = 600
)

// Factory builds a fresh engine for the scene shown. It is called again on
// every rebuild.
type Factory func() (*physics.Engine, error)

type Options struct {
	Scene         string
	FPS           int
	StepsPerFrame int
	Width, Height int
	Theme         string
}

func DefaultOptions() Options {
	return Options{
		FPS:           DefaultFPS,
		StepsPerFrame: 1,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Theme:         Themes[0].Name,
	}
}

type TickMsg time.Time

// Model steps an engine on a fixed tick and draws it onto a Braille canvas.
// The engine is owned by the model; View only reads it.
type Model struct {
	factory       Factory
	engine        *physics.Engine
	opts          Options
	canvas        *Canvas
	proj          Projector
	theme         Theme
	styles        Styles
	running       bool
	showHelp      bool
	energyHistory []float64
	hitHistory    []float64
	frames        int
	fps           float64
	lastFPS       time.Time
	err           error
}

func NewModel(factory Factory, opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.StepsPerFrame <= 0 {
		opts.StepsPerFrame = 1
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}

	eng, err := factory()
	if err != nil {
		return Model{}, err
	}

	theme := GetTheme(opts.Theme)
	canvas := NewCanvas(opts.Width, opts.Height)
	m := Model{
		factory:       factory,
		engine:        eng,
		opts:          opts,
		canvas:        canvas,
		proj:          NewProjector(eng.World(), canvas),
		theme:         theme,
		styles:        theme.Styles(),
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
		hitHistory:    make([]float64, 0, historyCapacity),
	}
	m.draw()
	return m, nil
}

func (m Model) Engine() *physics.Engine { return m.engine }
func (m Model) Running() bool           { return m.running }
func (m Model) FPS() float64            { return m.fps }
func (m Model) Theme() Theme            { return m.theme }
func (m Model) Err() error              { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
				m.draw()
			}
		case "r":
			m.rebuild()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = m.theme.Styles()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.opts.StepsPerFrame; i++ {
				m.step()
			}
			m.draw()
		}
		m.countFrame(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.engine.Update()

	m.energyHistory = append(m.energyHistory, m.engine.Energy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.hitHistory = append(m.hitHistory, float64(m.engine.LastCollisions()))
	if len(m.hitHistory) > historyCapacity {
		m.hitHistory = m.hitHistory[1:]
	}
}

// countFrame refreshes the FPS reading once per second.
func (m *Model) countFrame(now time.Time) {
	if m.lastFPS.IsZero() {
		m.lastFPS = now
		return
	}
	m.frames++
	if elapsed := now.Sub(m.lastFPS); elapsed >= time.Second {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.lastFPS = now
	}
}

// rebuild replaces the engine with a fresh one from the factory. On error
// the current engine is kept and the error is shown.
func (m *Model) rebuild() {
	eng, err := m.factory()
	if err != nil {
		m.err = err
		return
	}
	m.engine, m.err = eng, nil
	m.proj = NewProjector(eng.World(), m.canvas)
	m.energyHistory = m.energyHistory[:0]
	m.hitHistory = m.hitHistory[:0]
	m.draw()
}

// draw renders springs as lines in the theme colour and particles as
// circles in their material colour. Anchors are drawn filled. A Braille
// cell carries one colour, so where a particle overlaps a spring the
// particle's colour wins.
func (m *Model) draw() {
	m.canvas.Clear()
	m.canvas.Pen = ""

	for id := 0; id < m.engine.NumSprings(); id++ {
		a, b, err := m.engine.SpringEndpoints(id)
		if err != nil {
			break
		}
		x0, y0 := m.proj.Project(a)
		x1, y1 := m.proj.Project(b)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	r := m.proj.Radius(m.engine.Config().ParticleRadius)
	for _, p := range m.engine.Particles() {
		x, y := m.proj.Project(p.Position)
		m.canvas.Pen = materialColor(p.Material)
		if p.Fixed() {
			m.canvas.FillCircle(x, y, r)
		} else {
			m.canvas.DrawCircle(x, y, r)
		}
	}
	m.canvas.Pen = ""
}

func materialColor(mat physics.Material) lipgloss.Color {
	c := mat.Color()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// View renders the TUI interface.
func (m Model) View() string {
	st := m.styles
	canvasView := st.Canvas.Render(m.canvas.ColorString(m.theme.Text))

	var s strings.Builder
	title := "SPRINGSIM"
	if m.opts.Scene != "" {
		title += " · " + strings.ToUpper(m.opts.Scene)
	}
	s.WriteString(st.Header.Render(title) + "\n")

	if m.running {
		s.WriteString(st.Running.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.Paused.Render("PAUSED") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(st.Graph.Render(chart) + "\n\n")
	}

	energy := m.engine.Energy()
	row := func(label, value string) {
		s.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}
	row("FPS", fmt.Sprintf("%.0f", m.fps))
	row("Time", fmt.Sprintf("%.2fs", m.engine.Time()))
	row("Step", fmt.Sprintf("%d", m.engine.Step()))
	row("Energy", fmt.Sprintf("%.2f", energy))
	row("Particles", fmt.Sprintf("%d", m.engine.NumParticles()))
	row("Springs", fmt.Sprintf("%d", m.engine.NumSprings()))
	row("Scheme", m.engine.SchemeName())
	row("Hits", SparklineChart(m.hitHistory, 20))
	row("Theme", m.theme.Name)

	if m.err != nil {
		s.WriteString("\n" + st.Error.Render("rebuild: "+m.err.Error()) + "\n")
	}

	s.WriteString(st.Hint.Render("SP:Pause N:Step R:Rebuild\nT:Theme ?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.Panel.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  N        - Single step when paused  ║
║  R        - Rebuild the scene        ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the live view full screen and blocks until it exits.
func Run(factory Factory, opts Options) error {
	m, err := NewModel(factory, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
