package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Opener returns the engine factory for a named scene.
type Opener func(scene string) (Factory, error)

const (
	stateMenu = iota
	stateSim
)

// Picker lists scenes and opens the selected one in a live Model.
type Picker struct {
	state  int
	cursor int
	scenes []string
	info   map[string]string
	open   Opener
	opts   Options
	live   Model
	err    error
}

func NewPicker(scenes []string, info map[string]string, open Opener, opts Options) Picker {
	return Picker{
		state:  stateMenu,
		scenes: scenes,
		info:   info,
		open:   open,
		opts:   opts,
	}
}

// Selected returns the scene under the cursor.
func (p Picker) Selected() string {
	if len(p.scenes) == 0 {
		return ""
	}
	return p.scenes[p.cursor]
}

// Live reports whether a scene is running.
func (p Picker) Live() bool { return p.state == stateSim }

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateSim {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			p.state = stateMenu
			return p, nil
		}
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.scenes)-1 {
			p.cursor++
		}
	case "enter", " ":
		return p.start()
	}
	return p, nil
}

func (p Picker) start() (Picker, tea.Cmd) {
	scene := p.Selected()
	factory, err := p.open(scene)
	if err != nil {
		p.err = err
		return p, nil
	}
	opts := p.opts
	opts.Scene = scene
	live, err := NewModel(factory, opts)
	if err != nil {
		p.err = err
		return p, nil
	}
	p.live, p.err, p.state = live, nil, stateSim
	return p, live.Init()
}

func (p Picker) View() string {
	if p.state == stateSim {
		return p.live.View()
	}

	st := GetTheme(p.opts.Theme).Styles()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))

	var b strings.Builder
	b.WriteString("\n\n    " + st.Header.Render("SPRINGSIM") + "\n")
	b.WriteString("    " + dim.Render("particle-spring playground") + "\n\n")
	for i, name := range p.scenes {
		desc := p.info[name]
		if i == p.cursor {
			fmt.Fprintf(&b, "    %s %s  %s\n", st.Cursor.Render("▸"), st.Value.Bold(true).Render(fmt.Sprintf("%-10s", name)), st.Cursor.Render(desc))
		} else {
			fmt.Fprintf(&b, "      %s  %s\n", dim.Render(fmt.Sprintf("%-10s", name)), dim.Render(desc))
		}
	}
	if p.err != nil {
		b.WriteString("\n    " + st.Error.Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n    " + st.Hint.Render("j/k navigate  enter select  esc back  q quit") + "\n")
	return b.String()
}

// RunPicker starts the scene menu full screen.
func RunPicker(scenes []string, info map[string]string, open Opener, opts Options) error {
	_, err := tea.NewProgram(NewPicker(scenes, info, open, opts), tea.WithAltScreen()).Run()
	return err
}
