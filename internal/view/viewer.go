package view

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var palette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorMaroon,
}

var (
	tieStyle      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	infiniteStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

// Style returns the screen style for g: ties and infinite regions are grey,
// finite regions take a palette colour and the largest region is reversed.
func Style(g Glyph) tcell.Style {
	var style tcell.Style
	switch {
	case g.Kind == KindTie:
		return tieStyle
	case g.Infinite:
		style = infiniteStyle
	default:
		style = tcell.StyleDefault.Foreground(palette[g.Owner%len(palette)])
	}
	if g.Largest {
		style = style.Reverse(true)
	}
	if g.Kind == KindPoint {
		style = style.Bold(true)
	}
	return style
}

// Viewer shows a Map on a tcell screen. The map scrolls with the arrow keys
// or hjkl when it is larger than the screen; q or Esc quits.
type Viewer struct {
	screen tcell.Screen
	m      *Map

	offX, offY int
}

// NewViewer binds m to an initialised screen.
func NewViewer(screen tcell.Screen, m *Map) *Viewer {
	return &Viewer{screen: screen, m: m}
}

// Offset returns the current scroll position in map cells.
func (v *Viewer) Offset() (x, y int) {
	return v.offX, v.offY
}

// Draw repaints the screen: the visible part of the map and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	mapRows := h - 1
	for sy := 0; sy < mapRows; sy++ {
		my := sy + v.offY
		if my >= len(v.m.Rows) {
			break
		}
		row := v.m.Rows[my]
		for sx := 0; sx < w; sx++ {
			mx := sx + v.offX
			if mx >= len(row) {
				break
			}
			g := row[mx]
			v.screen.SetContent(sx, sy, g.Rune, nil, Style(g))
		}
	}
	if h > 0 {
		v.drawStatus(w, h-1)
	}
	v.screen.Show()
}

func (v *Viewer) drawStatus(w, y int) {
	text := fmt.Sprintf(" %s | box %s-%s | q quit ", v.m.Summary(), v.m.Box.Min, v.m.Box.Max)
	runes := []rune(text)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, statusStyle)
	}
}

// HandleEvent applies ev and reports whether the viewer should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.scroll(-1, 0)
		case tcell.KeyRight:
			v.scroll(1, 0)
		case tcell.KeyUp:
			v.scroll(0, -1)
		case tcell.KeyDown:
			v.scroll(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				v.scroll(-1, 0)
			case 'l':
				v.scroll(1, 0)
			case 'k':
				v.scroll(0, -1)
			case 'j':
				v.scroll(0, 1)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.scroll(0, 0)
	}
	return true
}

// scroll moves the viewport, keeping it inside the map.
func (v *Viewer) scroll(dx, dy int) {
	w, h := v.screen.Size()
	maxX := v.m.Box.Width() - w
	maxY := v.m.Box.Height() - (h - 1)
	v.offX = clamp(v.offX+dx, 0, maxX)
	v.offY = clamp(v.offY+dy, 0, maxY)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run draws the map and processes events until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// Show opens the terminal, runs a Viewer for m and restores the terminal on
// return.
func Show(ctx context.Context, m *Map) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("view: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("view: init screen: %w", err)
	}
	defer screen.Fini()
	return NewViewer(screen, m).Run(ctx)
}
