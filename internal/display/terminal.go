// internal/display/terminal.go
//
// Terminal surface for the puzzle.
// Responsibilities:
//   - Render a game.Snapshot: header, address gutters, both panels and the
//     status column, with the run under the cursor in reverse video.
//   - Translate key events into game intents.
//   - Ring the bell (speaker tone when available, terminal bell otherwise).
//   - Ask the replay question between rounds.
//
// The display performs no game logic; it only reads snapshots.

package display

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/termlink/internal/game"
	"github.com/robalobadob/termlink/internal/sound"
	"github.com/robalobadob/termlink/internal/store"
)

// Layout, in screen cells.
const (
	headerRows   = 5
	gutterWidth  = 6 // "0XABCD"
	panelGap     = 1
	panelStride  = 20 // x distance between the two gutter columns
	statusOffset = 40
	statusWidth  = 18
	blockRune    = '█'
)

var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	styleHighlight = styleBase.Reverse(true)
	styleAlert     = styleBase.Bold(true)
)

// Terminal draws rounds on a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	company string
	player  *sound.Player
}

// New wraps an initialized screen. player may be nil.
func New(screen tcell.Screen, company string, player *sound.Player) *Terminal {
	screen.SetStyle(styleBase)
	return &Terminal{screen: screen, company: company, player: player}
}

// MinSize returns the smallest screen that fits a board of geometry g.
func MinSize(g game.Geometry) (width, height int) {
	width = max(statusOffset, panelStride+gutterWidth+panelGap+g.Span) + statusWidth
	return width, headerRows + g.Limit + 1 // replay prompt row
}

// Draw renders the snapshot and session tally and shows the frame.
func (t *Terminal) Draw(s game.Snapshot, tally store.Tally) {
	t.screen.Clear()

	w, h := t.screen.Size()
	if mw, mh := MinSize(s.Geometry); w < mw || h < mh {
		t.text(0, 0, fmt.Sprintf("TERMINAL TOO SMALL: NEED %dx%d", mw, mh), styleAlert, w)
		t.screen.Show()
		return
	}

	t.drawHeader(s, tally)
	t.drawPanels(s)
	t.drawStatus(s)
	t.screen.Show()
}

func (t *Terminal) drawHeader(s game.Snapshot, tally store.Tally) {
	switch s.State {
	case game.StateLost:
		t.text(0, 0, "TERMINAL LOCKED", styleAlert, statusOffset)
		t.text(0, 1, "PLEASE CONTACT AN ADMINISTRATOR", styleBase, statusOffset)
	case game.StateWon:
		t.text(0, 0, t.company+" TERMLINK PROTOCOL", styleBase, statusOffset)
		t.text(0, 1, "ACCESS GRANTED", styleAlert, statusOffset)
	default:
		t.text(0, 0, t.company+" TERMLINK PROTOCOL", styleBase, statusOffset)
		t.text(0, 1, "ENTER PASSWORD NOW", styleBase, statusOffset)
	}

	line := fmt.Sprintf("ATTEMPTS REMAINING: %d ", s.Attempts)
	x := t.text(0, 3, line, styleBase, statusOffset)
	for i := 0; i < s.Attempts; i++ {
		t.screen.SetContent(x, 3, blockRune, nil, styleBase)
		x += 2
	}

	if tally.Played > 0 {
		t.text(statusOffset, 3, fmt.Sprintf("W:%d L:%d", tally.Won, tally.Lost), styleBase, statusWidth)
	}
}

func (t *Terminal) drawPanels(s game.Snapshot) {
	g := s.Geometry
	for row := 0; row < game.Fields*g.Limit; row++ {
		field, y := row/g.Limit, row%g.Limit
		x := field * panelStride
		t.text(x, headerRows+y, fmt.Sprintf("0X%04X", s.RowAddress(row)&0xFFFF), styleBase, gutterWidth)
	}

	for pos, ch := range s.Text {
		style := styleBase
		if s.Highlight.Contains(pos) {
			style = styleHighlight
		}
		x := g.Field(pos)*panelStride + gutterWidth + panelGap + g.X(pos)
		t.screen.SetContent(x, headerRows+g.Y(pos), rune(ch), nil, style)
	}
}

func (t *Terminal) drawStatus(s game.Snapshot) {
	bottom := headerRows + s.Geometry.Limit - 1
	t.text(statusOffset, bottom, ">"+s.Selection(), styleBase, statusWidth)

	rows := s.Geometry.Limit - 1
	hist := s.History
	if len(hist) > rows {
		hist = hist[len(hist)-rows:]
	}
	top := bottom - len(hist)
	for i, line := range hist {
		t.text(statusOffset, top+i, line, styleBase, statusWidth)
	}
}

// text draws s from (x, y), clipped to width cells, and returns the next free column.
func (t *Terminal) text(x, y int, s string, style tcell.Style, width int) int {
	s = runewidth.Truncate(s, width, "")
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Poll blocks for the next event and returns the intent it maps to.
// Resize events resync the screen and return IntentNone; callers redraw.
// ok is false for keys with no meaning, which callers answer with the bell.
func (t *Terminal) Poll() (in game.Intent, ok bool) {
	ev := t.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		// screen finalized
		return game.Abort, true
	case *tcell.EventResize:
		t.screen.Sync()
		return game.IntentNone, true
	case *tcell.EventKey:
		in := KeyIntent(ev)
		return in, in != game.IntentNone
	}
	return game.IntentNone, true
}

// KeyIntent maps a key to an intent: arrows or hjkl move, Enter or Space
// submits, Esc, Ctrl-C or q aborts.
func KeyIntent(ev *tcell.EventKey) game.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyEnter:
		return game.Submit
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Abort
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return game.MoveUp
		case 'j':
			return game.MoveDown
		case 'h':
			return game.MoveLeft
		case 'l':
			return game.MoveRight
		case ' ':
			return game.Submit
		case 'q':
			return game.Abort
		}
	}
	return game.IntentNone
}

// AskReplay shows the replay prompt under the panels and waits for Y or N.
// Esc and Ctrl-C count as N.
func (t *Terminal) AskReplay(g game.Geometry) bool {
	_, h := MinSize(g)
	t.text(0, h, "PLAY AGAIN? [Y/N]", styleAlert, statusOffset)
	t.screen.Show()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return false
			}
			if ev.Key() == tcell.KeyRune {
				switch strings.ToUpper(string(ev.Rune())) {
				case "Y":
					return true
				case "N":
					return false
				}
			}
			t.Ring()
		}
	}
}

// Ring signals rejected input.
func (t *Terminal) Ring() {
	if t.player.Ready() {
		t.player.Ring()
		return
	}
	_ = t.screen.Beep()
}

// Celebrate plays the success chime when a speaker is available.
func (t *Terminal) Celebrate() {
	if t.player.Ready() {
		t.player.Chime()
	}
}
