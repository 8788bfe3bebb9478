package terminal

import (
	"unicode/utf8"

	"lattice-viewer/internal/commands"
	"lattice-viewer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 160
)

var (
	barColor    = rl.NewColor(15, 23, 42, 235)
	borderColor = rl.NewColor(0, 229, 255, 160)
	historyBg   = rl.NewColor(5, 10, 24, 220)
)

// Terminal is the command bar at the bottom of the window, shown and hidden with ESC.
// Lines starting with "cmd " are executed through the command registry; anything else
// gets a hint pointing at "cmd help".
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed terminal that logs input to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the terminal is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC (toggle) and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and runs it if it is a command. Exposed so scripted input follows the same path as typing.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd ", e.g. cmd structure --type hexagonal (cmd help lists all)`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Error("command failed", err)
	}
}

// Draw draws the input bar and recent log lines when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	historyH := int32(maxLinesOnScreen * lineHeight)
	historyY := barY - historyH
	if historyY < 0 {
		historyH, historyY = barY, 0
	}
	if historyH > 0 {
		rl.DrawRectangle(0, historyY, screenW, historyH, historyBg)
	}
	lines := t.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i, line := range lines[start:] {
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		rl.DrawText(line, padding, historyY+int32(i*lineHeight)+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, borderColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
