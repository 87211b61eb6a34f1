package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/config"
)

func TestParseGrid(t *testing.T) {
	names, ranges, err := parseGrid([]string{"dt=0.01, 0.02", "hooke=1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "dt" || names[1] != "hooke" {
		t.Errorf("names %v", names)
	}
	if len(ranges[0]) != 2 || ranges[0][1] != 0.02 || ranges[1][0] != 1 {
		t.Errorf("ranges %v", ranges)
	}

	for _, bad := range []string{"dt", "dt=a,b"} {
		if _, _, err := parseGrid([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&dt, "dt", 0, "")
	cmd.Flags().StringVar(&scheme, "scheme", "", "")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "")
	return cmd
}

func TestLoadSetup_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "springsim.yaml")
	data := []byte("physics:\n  dt: 0.005\n  gravity: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	configFile = path
	defer func() { configFile = "" }()

	cmd := newCmd()
	if err := cmd.Flags().Set("gravity", "7"); err != nil {
		t.Fatal(err)
	}

	s, err := loadSetup(cmd, []string{"chain"})
	if err != nil {
		t.Fatal(err)
	}
	if s.cfg.Dt != 0.005 {
		t.Errorf("config file dt not applied: %v", s.cfg.Dt)
	}
	if s.cfg.Gravity != 7 {
		t.Errorf("flag should override config file, gravity %v", s.cfg.Gravity)
	}
	if s.name != "chain" {
		t.Errorf("scene %q", s.name)
	}

	eng, err := s.build()
	if err != nil {
		t.Fatal(err)
	}
	if eng.NumParticles() != len(s.scene.Particles) {
		t.Error("engine does not match scene")
	}
}

func TestLoadSetup_Defaults(t *testing.T) {
	s, err := loadSetup(newCmd(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.name != config.DefaultScene {
		t.Errorf("expected default scene, got %q", s.name)
	}
}

func TestLoadSetup_Errors(t *testing.T) {
	if _, err := loadSetup(newCmd(), []string{"nope"}); err == nil {
		t.Error("expected unknown scene error")
	}

	cmd := newCmd()
	_ = cmd.Flags().Set("scheme", "rk9")
	if _, err := loadSetup(cmd, nil); err == nil {
		t.Error("expected unknown scheme error")
	}
}
