package view

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

const damagedGlyph = "[X]"

// Viewer draws the text display of a game on a terminal screen.
type Viewer struct {
	screen       tcell.Screen
	style        tcell.Style
	damagedStyle tcell.Style
}

func NewViewer(screen tcell.Screen) *Viewer {
	return &Viewer{
		screen:       screen,
		style:        tcell.StyleDefault,
		damagedStyle: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Draw replaces the screen content with text, one terminal row per line.
// Lines wider than the screen are cut off.
func (v *Viewer) Draw(text string) {
	v.screen.Clear()

	for y, line := range strings.Split(text, "\n") {
		x := 0
		for len(line) > 0 {
			if strings.HasPrefix(line, damagedGlyph) {
				for _, r := range damagedGlyph {
					v.screen.SetContent(x, y, r, nil, v.damagedStyle)
					x++
				}
				line = line[len(damagedGlyph):]
				continue
			}

			r, size := utf8.DecodeRuneInString(line)
			v.screen.SetContent(x, y, r, nil, v.style)
			line = line[size:]
			x++
		}
	}

	v.screen.Show()
}

// Run draws the output of display until Esc, q or Ctrl-C is pressed or ctx
// is done. The screen must already be initialized.
func (v *Viewer) Run(ctx context.Context, display func() string) error {
	v.Draw(display())

	events := make(chan tcell.Event)
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

	for {
		// a cancelled context wins over queued events
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw(display())
			}
		}
	}
}
