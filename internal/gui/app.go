package gui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

const (
	winW, winH = 1280, 720
	sidebarW   = 380
	margin     = 24
)

// Monochrome palette with a single accent for the compared pair.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColBar     = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 80, 200, 255)
	ColSorted  = rl.NewColor(90, 220, 140, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

// Muter is the audio switch bound to the M key.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type App struct {
	coord    *visual.Coordinator
	audio    Muter
	log      *slog.Logger
	ids      []sorting.ID
	selected int
	inMenu   bool
	showCode bool
}

func initWindow() {
	rl.InitWindow(winW, winH, "sortviz")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(coord *visual.Coordinator, audio Muter, interactive bool, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := &App{
		coord:  coord,
		audio:  audio,
		log:    log,
		ids:    sorting.IDs(),
		inMenu: interactive,
	}
	current := coord.Options().Algorithm
	for i, id := range a.ids {
		if id == current {
			a.selected = i
		}
	}
	return a
}

// Run opens the window and blocks until it is closed.
func Run(coord *visual.Coordinator, audio Muter, interactive bool, log *slog.Logger) {
	initWindow()
	defer rl.CloseWindow()
	NewApp(coord, audio, interactive, log).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.coord.Frame(time.Now())
		a.Draw()
	}
}

// Update handles input for one frame. It returns false when the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	if a.inMenu {
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
			a.selected = (a.selected + 1) % len(a.ids)
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
			a.selected = (a.selected - 1 + len(a.ids)) % len(a.ids)
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			a.coord.SelectAlgorithm(a.ids[a.selected])
			a.inMenu = false
		}
		return true
	}

	opts := a.coord.Options()
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		a.coord.Reset()
		a.inMenu = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.coord.Start(time.Now())
	case rl.IsKeyPressed(rl.KeyR):
		a.coord.Reset()
	case rl.IsKeyPressed(rl.KeyTab):
		delta := 1
		if rl.IsKeyDown(rl.KeyLeftShift) {
			delta = -1
		}
		a.selectAlgorithm(sorting.Next(opts.Algorithm, delta))
	case rl.IsKeyPressed(rl.KeyRightBracket):
		if n := config.ClampSize(opts.Size + 10); n != opts.Size {
			a.coord.SetArraySize(n)
		}
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		if n := config.ClampSize(opts.Size - 10); n != opts.Size {
			a.coord.SetArraySize(n)
		}
	case rl.IsKeyPressed(rl.KeyRight):
		a.coord.SetSpeed(config.ClampSpeed(opts.Speed - 5))
	case rl.IsKeyPressed(rl.KeyLeft):
		a.coord.SetSpeed(config.ClampSpeed(opts.Speed + 5))
	case rl.IsKeyPressed(rl.KeyC):
		a.showCode = !a.showCode
	case rl.IsKeyPressed(rl.KeyM):
		if a.audio != nil {
			a.audio.SetMuted(!a.audio.Muted())
		}
	}
	return true
}

func (a *App) selectAlgorithm(id sorting.ID) {
	a.coord.SelectAlgorithm(id)
	for i, x := range a.ids {
		if x == id {
			a.selected = i
		}
	}
	a.log.Debug("algorithm selected", "algorithm", id)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	if a.inMenu {
		a.drawMenu()
	} else {
		s := a.coord.Snapshot()
		a.drawBars(s)
		a.drawSidebar(s)
	}
	rl.EndDrawing()
}

func (a *App) drawMenu() {
	rl.DrawText("SORTVIZ", 80, 80, 48, ColSelect)
	rl.DrawText("sorting algorithm visualizer", 82, 136, 20, ColText)
	for i, id := range a.ids {
		d := sorting.Lookup(id)
		y := int32(200 + i*44)
		col := ColTextDim
		if i == a.selected {
			col = ColBar
			rl.DrawText(">", 80, y, 28, ColSelect)
		}
		rl.DrawText(d.Name, 110, y, 28, col)
	}
	rl.DrawText("j/k select   enter open   q quit", 80, winH-60, 18, ColTextDim)
}

func (a *App) drawBars(s visual.Snapshot) {
	x0, y0 := float32(margin), float32(margin)
	w := float32(winW - sidebarW - 2*margin)
	h := float32(winH - 2*margin)
	rl.DrawRectangleLinesEx(rl.NewRectangle(x0-4, y0-4, w+8, h+8), 1, ColGrid)

	n := len(s.Array)
	if n == 0 {
		return
	}
	top := 1
	for _, v := range s.Array {
		top = max(top, v)
	}
	bw := w / float32(n)
	gap := float32(0)
	if bw > 4 {
		gap = 1
	}

	for i, v := range s.Array {
		col := ColBar
		if s.Complete {
			col = ColSorted
		}
		if !s.Highlight.IsNone() && (i == s.Highlight[0] || i == s.Highlight[1]) {
			col = ColSelect
		}
		bh := h * float32(v) / float32(top)
		rl.DrawRectangleRec(rl.NewRectangle(x0+float32(i)*bw, y0+h-bh, bw-gap, bh), col)
	}
}

func (a *App) drawSidebar(s visual.Snapshot) {
	x := int32(winW - sidebarW + margin)
	y := int32(margin)
	line := func(text string, size int32, col rl.Color) {
		rl.DrawText(text, x, y, size, col)
		y += size + 8
	}

	line(s.Algorithm.Name, 32, ColSelect)
	status := "ready"
	switch {
	case s.Running:
		status = "sorting"
	case s.Complete:
		status = "sorted"
	}
	line(status, 20, ColText)
	y += 10
	line(fmt.Sprintf("size      %d", s.Size), 18, ColText)
	line(fmt.Sprintf("speed     %d ms", s.Speed), 18, ColText)
	line(fmt.Sprintf("interval  %s", s.Interval), 18, ColText)
	line(fmt.Sprintf("steps     %d", s.Applied), 18, ColText)
	sound := "off"
	if a.audio != nil && !a.audio.Muted() {
		sound = "on"
	}
	line("sound     "+sound, 18, ColText)
	y += 10

	if a.showCode {
		for _, l := range strings.Split(s.Algorithm.Code, "\n") {
			line(strings.ReplaceAll(l, "\t", "  "), 14, ColTextDim)
		}
	} else {
		for _, l := range strings.Split(wrap(s.Algorithm.Description, 34), "\n") {
			line(l, 16, ColTextDim)
		}
	}

	rl.DrawText("space start  r new  tab algo", x, winH-70, 16, ColTextDim)
	rl.DrawText("[ ] size  <- -> speed  c code  m mute", x, winH-46, 16, ColTextDim)
}

func wrap(text string, width int) string {
	var b strings.Builder
	line := 0
	for i, word := range strings.Fields(text) {
		if i > 0 && line+1+len(word) > width {
			b.WriteByte('\n')
			line = 0
		} else if i > 0 {
			b.WriteByte(' ')
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
