package view

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewer_Draw(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	v := NewViewer(screen, buildMap(t, sixPoints()))
	v.Draw()

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'A', mainc)
	assert.Equal(t, Style(v.m.Rows[0][0]), style)

	mainc, _, _, _ = screen.GetContent(4, 4)
	assert.Equal(t, 'E', mainc)

	// Status line on the last row.
	mainc, _, style, _ = screen.GetContent(1, 11)
	assert.Equal(t, 'l', mainc)
	assert.Equal(t, statusStyle, style)
}

func TestViewer_ScrollClamps(t *testing.T) {
	screen := newSimScreen(t, 4, 3)
	v := NewViewer(screen, buildMap(t, sixPoints()))

	for i := 0; i < 10; i++ {
		assert.True(t, v.HandleEvent(key('l')))
	}
	for i := 0; i < 20; i++ {
		assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	}
	x, y := v.Offset()
	assert.Equal(t, 4, x) // 8 columns, 4 visible
	assert.Equal(t, 7, y) // 9 rows, 2 visible above the status line

	v.HandleEvent(key('h'))
	v.HandleEvent(key('k'))
	x, y = v.Offset()
	assert.Equal(t, 3, x)
	assert.Equal(t, 6, y)

	for i := 0; i < 10; i++ {
		v.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
		v.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	}
	x, y = v.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)

	v.Draw()
	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'A', mainc)
}

func TestViewer_QuitKeys(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	v := NewViewer(screen, buildMap(t, sixPoints()))
	assert.False(t, v.HandleEvent(key('q')))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, v.HandleEvent(key('x')))
}

func TestViewer_RunUntilQuit(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	v := NewViewer(screen, buildMap(t, sixPoints()))
	require.NoError(t, screen.PostEvent(key('l')))
	require.NoError(t, screen.PostEvent(key('q')))
	assert.NoError(t, v.Run(context.Background()))
}

func TestViewer_RunCancelled(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	v := NewViewer(screen, buildMap(t, sixPoints()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, v.Run(ctx), context.Canceled)
}

func TestStyle(t *testing.T) {
	assert.Equal(t, tieStyle, Style(Glyph{Kind: KindTie, Owner: -1}))
	assert.Equal(t, infiniteStyle, Style(Glyph{Kind: KindOwned, Infinite: true}))
	assert.Equal(t,
		tcell.StyleDefault.Foreground(palette[1]).Reverse(true).Bold(true),
		Style(Glyph{Kind: KindPoint, Owner: 1, Largest: true}))
}
