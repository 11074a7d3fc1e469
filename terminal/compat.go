package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellHost adapts an initialized tcell.Screen to the prompt surface.
// In that configuration tcell already owns raw mode and the event loop,
// so Init and Fini are no-ops; the host application keeps ownership and
// the prompt never installs a second mode guard.
type TcellHost struct {
	screen tcell.Screen
	style  tcell.Style

	// Cursor position tracked in 1-based coordinates to match the
	// native screen writer
	col int
	row int
}

// NewTcellHost wraps a screen the application has already initialized.
func NewTcellHost(screen tcell.Screen) *TcellHost {
	return &TcellHost{
		screen: screen,
		style:  tcell.StyleDefault,
		col:    1,
		row:    1,
	}
}

// SetStyle overrides the style used for prompt text
func (h *TcellHost) SetStyle(style tcell.Style) {
	h.style = style
}

// Init implements the Terminal lifecycle; tcell already holds raw mode
func (h *TcellHost) Init() error { return nil }

// Fini implements the Terminal lifecycle; the screen stays with the host app
func (h *TcellHost) Fini() error { return nil }

func (h *TcellHost) Size() (int, int) {
	return h.screen.Size()
}

func (h *TcellHost) MoveCursor(col, row int) {
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	h.col = col
	h.row = row
	h.screen.ShowCursor(col-1, row-1)
}

func (h *TcellHost) ClearLine() {
	w, _ := h.screen.Size()
	for x := 0; x < w; x++ {
		h.screen.SetContent(x, h.row-1, ' ', nil, h.style)
	}
}

func (h *TcellHost) Clear() {
	h.screen.Clear()
	h.col = 1
	h.row = 1
}

func (h *TcellHost) Print(text string) {
	for _, r := range text {
		h.screen.SetContent(h.col-1, h.row-1, r, nil, h.style)
		h.col++
	}
	h.screen.ShowCursor(h.col-1, h.row-1)
}

func (h *TcellHost) Flush() error {
	h.screen.Show()
	return nil
}

func (h *TcellHost) Bell() {
	h.screen.Beep()
}

// ReadKey blocks on the tcell event loop, dropping non-key events.
// Resize and mouse events are irrelevant while a modal prompt is open.
func (h *TcellHost) ReadKey() (Event, error) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}, nil
		}
		if kev, ok := ev.(*tcell.EventKey); ok {
			return eventFromTcell(kev), nil
		}
	}
}

// eventFromTcell maps tcell key events onto the native event type
func eventFromTcell(ev *tcell.EventKey) Event {
	var mod Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mod}
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		return Event{Type: EventKey, Key: KeyEnter, Modifiers: mod}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape, Modifiers: mod}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab, Modifiers: mod}
	case tcell.KeyBacktab:
		return Event{Type: EventKey, Key: KeyBacktab, Modifiers: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace, Modifiers: mod}
	case tcell.KeyDelete:
		return Event{Type: EventKey, Key: KeyDelete, Modifiers: mod}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp, Modifiers: mod}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown, Modifiers: mod}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft, Modifiers: mod}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight, Modifiers: mod}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome, Modifiers: mod}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd, Modifiers: mod}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp, Modifiers: mod}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown, Modifiers: mod}
	case tcell.KeyInsert:
		return Event{Type: EventKey, Key: KeyInsert, Modifiers: mod}
	}

	// Ctrl+letter arrives as dedicated tcell keys in the 0x01-0x1a range
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Event{Type: EventKey, Key: KeyCtrl, Rune: rune('a' + k - tcell.KeyCtrlA), Modifiers: mod}
	}

	return Event{Type: EventKey, Key: KeyNone, Modifiers: mod}
}
