package viewer

import (
	"fmt"
	"strings"

	"lattice-viewer/internal/commands"
	"lattice-viewer/internal/lattice"
)

// RegisterCommands adds the viewer's terminal commands to reg. save persists the current preferences;
// logf receives informational output (e.g. help text).
func RegisterCommands(reg *commands.Registry, st *State, save func() error, logf func(format string, args ...any)) {
	structureFS := commands.NewFlagSet("structure")
	structureType := structureFS.String("type", "", "cubic, hexagonal or monoclinic")
	reg.Register("structure", "--type cubic|hexagonal|monoclinic  regenerate the lattice", structureFS, func(args []string) error {
		defer func() { *structureType = "" }()
		t := *structureType
		if t == "" && len(args) > 0 {
			t = args[0]
		}
		if t == "" {
			return fmt.Errorf("structure: missing --type")
		}
		lt := lattice.ParseType(t)
		st.SetStructureType(lt)
		if !lt.Known() {
			logf("unknown structure %q: showing an empty lattice", t)
			return nil
		}
		logf("structure %s: %d nodes, %d edges", lt, len(st.Structure().Nodes), len(st.Edges()))
		return nil
	})

	sceneFS := commands.NewFlagSet("scene")
	sceneKind := sceneFS.String("kind", "", "atomic, lattice or empty")
	reg.Register("scene", "--kind atomic|lattice|empty  switch scene", sceneFS, func(args []string) error {
		defer func() { *sceneKind = "" }()
		k := *sceneKind
		if k == "" && len(args) > 0 {
			k = args[0]
		}
		return st.SetScene(strings.ToLower(k))
	})

	animateFS := commands.NewFlagSet("animate")
	animOn := animateFS.Bool("on", false, "enable rotation and breathing")
	animOff := animateFS.Bool("off", false, "disable animation")
	reg.Register("animate", "--on|--off  lattice rotation and breathing", animateFS, func([]string) error {
		defer func() { *animOn, *animOff = false, false }()
		on, err := onOff(*animOn, *animOff, "--on", "--off")
		if err != nil {
			return err
		}
		st.SetAnimate(on)
		return nil
	})

	reg.Register("labmode", "toggle lab mode (forces dark theme)", nil, func([]string) error {
		st.ToggleLab()
		return nil
	})
	reg.Register("darkmode", "toggle dark theme (clears lab mode)", nil, func([]string) error {
		st.ToggleDark()
		return nil
	})

	registerToggle(reg, "grid", "editor grid", st.SetGridVisible)
	registerToggle(reg, "fps", "FPS counter", st.SetShowFPS)
	registerToggle(reg, "stats", "lattice node/edge counts", st.SetShowStats)

	sizeFS := commands.NewFlagSet("nodesize")
	radius := sizeFS.Float64("radius", 0, "node radius in world units")
	reg.Register("nodesize", "--radius R  node sphere radius", sizeFS, func([]string) error {
		defer func() { *radius = 0 }()
		return st.SetNodeSize(float32(*radius))
	})

	reg.Register("save", "write preferences to the config file", nil, func([]string) error {
		if save == nil {
			return fmt.Errorf("save: no config file")
		}
		return save()
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			logf("cmd %s", line)
		}
		return nil
	})
}

// registerToggle adds a "<name> --show|--hide" command that calls set.
func registerToggle(reg *commands.Registry, name, what string, set func(bool)) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show "+what)
	hide := fs.Bool("hide", false, "hide "+what)
	reg.Register(name, "--show|--hide  "+what, fs, func([]string) error {
		defer func() { *show, *hide = false, false }()
		v, err := onOff(*show, *hide, "--show", "--hide")
		if err != nil {
			return err
		}
		set(v)
		return nil
	})
}

func onOff(on, off bool, onFlag, offFlag string) (bool, error) {
	switch {
	case on && !off:
		return true, nil
	case off && !on:
		return false, nil
	}
	return false, fmt.Errorf("use %s or %s", onFlag, offFlag)
}
