package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/physics"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0: got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1: got %U", c.Grid[0][1])
	}
	if !c.IsSet(0, 0) || c.IsSet(1, 0) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("unset left %U", c.Grid[0][0])
	}

	c.Clear()
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("clear left pixels set")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 11)

	if !c.IsSet(0, 0) || !c.IsSet(19, 11) {
		t.Error("line endpoints not set")
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 6)

	for _, p := range [][2]int{{26, 20}, {14, 20}, {20, 26}, {20, 14}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("outline point %v not set", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("outline should leave the centre empty")
	}

	c.Clear()
	c.FillCircle(20, 20, 3)
	if !c.IsSet(20, 20) || !c.IsSet(23, 20) || c.IsSet(23, 23) {
		t.Error("unexpected fill")
	}

	c.Clear()
	c.DrawCircle(5, 5, 0)
	if !c.IsSet(5, 5) {
		t.Error("zero radius should set the centre")
	}
}

func TestProjector(t *testing.T) {
	world, err := physics.NewWorld(dynamo.Zero, 799, 599)
	if err != nil {
		t.Fatal(err)
	}
	// 800 x 600 sub-pixels map this world at scale 1
	c := NewCanvas(400, 150)
	p := NewProjector(world, c)

	tests := []struct {
		in   dynamo.Vec2
		x, y int
	}{
		{dynamo.V(0, 0), 0, 599},
		{dynamo.V(799, 599), 799, 0},
		{dynamo.V(400, 500), 400, 99},
	}

	for _, tt := range tests {
		x, y := p.Project(tt.in)
		if x != tt.x || y != tt.y {
			t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tt.in, x, y, tt.x, tt.y)
		}
	}

	if p.Radius(5) != 5 || p.Radius(0.1) != 1 {
		t.Errorf("unexpected radii %d %d", p.Radius(5), p.Radius(0.1))
	}
}

func TestProjector_AspectRatio(t *testing.T) {
	world, _ := physics.NewWorld(dynamo.Zero, 300, 600)
	c := NewCanvas(80, 30)
	p := NewProjector(world, c)

	// limited by height: 119 sub-pixels for 600 units
	x0, y0 := p.Project(dynamo.V(0, 0))
	x1, y1 := p.Project(dynamo.V(300, 300))
	if d := (x1 - x0) - (y0 - y1); d < -1 || d > 1 {
		t.Errorf("scale differs between axes: dx %d dy %d", x1-x0, y0-y1)
	}
	if x0 <= 0 {
		t.Errorf("narrow world should be centred, left edge at %d", x0)
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 3); got != "───" {
		t.Errorf("empty: %q", got)
	}
	if got := SparklineChart([]float64{0, 1, 2, 3}, 2); got != "▁█" {
		t.Errorf("tail: %q", got)
	}
	if got := SparklineChart([]float64{5, 5}, 4); got != "▁▁" {
		t.Errorf("flat: %q", got)
	}
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("got %d names", len(names))
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
	last := Themes[len(Themes)-1].Name
	if NextTheme(last).Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
}

func TestThemes_CycleVisitsAll(t *testing.T) {
	seen := make(map[string]bool)
	name := Themes[0].Name
	for range Themes {
		if seen[name] {
			t.Fatalf("theme %q repeated before the cycle closed", name)
		}
		seen[name] = true
		name = NextTheme(name).Name
	}
	if name != Themes[0].Name || len(seen) != len(Themes) {
		t.Errorf("cycle visited %d of %d themes", len(seen), len(Themes))
	}
}

func TestCanvasPen(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Pen = "#ff0000"
	c.Set(2, 0)
	c.Pen = ""
	c.Set(4, 0)

	if c.Colors[0][0] != "" || c.Colors[0][2] != "" {
		t.Error("cells drawn without a pen should have no colour")
	}
	if c.Colors[0][1] != "#ff0000" {
		t.Errorf("pen not recorded, got %q", c.Colors[0][1])
	}

	out := c.ColorString("#ffffff")
	if strings.Count(out, "\n") != c.Height {
		t.Errorf("expected %d rows, got %q", c.Height, out)
	}

	c.Clear()
	if c.Colors[0][1] != "" {
		t.Error("clear left a colour behind")
	}
}
