package debug

import (
	"fmt"
	"runtime"

	"lattice-viewer/internal/lattice"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws runtime information in the top-right corner: FPS, heap usage and lattice stats.
// All lines are off by default.
type Overlay struct {
	ShowFPS   bool
	ShowMem   bool
	ShowStats bool

	frameCount uint32
	fpsText    string
	memText    string
	mem        runtime.MemStats

	// stats text is rebuilt only when the structure pointer changes
	statsFor  *lattice.Structure
	statsText string
}

// New returns an overlay with every line hidden.
func New() *Overlay {
	return &Overlay{}
}

// StatsLine formats node and edge counts for s, e.g. "Nodes: 27  Edges: 54  Type: cubic".
func StatsLine(s *lattice.Structure) string {
	name := "none"
	if s != nil && s.Type != "" {
		name = string(s.Type)
	}
	var nodes int
	if s != nil {
		nodes = len(s.Nodes)
	}
	return fmt.Sprintf("Nodes: %d  Edges: %d  Type: %s", nodes, s.EdgeCount(), name)
}

// Draw renders the enabled lines for structure s. Call after the scene and terminal.
func (o *Overlay) Draw(s *lattice.Structure, color rl.Color) {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0
	if o.ShowFPS && o.fpsText == "" || o.ShowMem && o.memText == "" {
		refresh = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	draw := func(text string) {
		if text == "" {
			return
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, color)
		y += lineHeight
	}

	if o.ShowFPS {
		if refresh {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		draw(o.fpsText)
	}
	if o.ShowMem {
		if refresh {
			runtime.ReadMemStats(&o.mem)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.mem.Alloc)/(1024*1024))
		}
		draw(o.memText)
	}
	if o.ShowStats {
		if s != o.statsFor || o.statsText == "" {
			o.statsFor = s
			o.statsText = StatsLine(s)
		}
		draw(o.statsText)
	}
}
