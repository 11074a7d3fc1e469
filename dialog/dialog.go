package dialog

import (
	"fmt"

	"github.com/lixenwraith/numdial/terminal"
)

// Screen is the two-line rendering surface the prompt draws on.
// Columns and rows are 1-based.
type Screen interface {
	MoveCursor(col, row int)
	ClearLine()
	Print(text string)
	Flush() error
}

// KeySource delivers one decoded keystroke at a time, blocking.
type KeySource interface {
	ReadKey() (terminal.Event, error)
}

// Alerter emits one alert signal for a rejected keystroke.
// Fire-and-forget; no return value.
type Alerter interface {
	Alert()
}

// Host bundles the collaborators a prompt runs against.
// terminal.Terminal and terminal.TcellHost both satisfy it.
type Host interface {
	Screen
	KeySource
}

// beller narrows a host that can ring the terminal bell
type beller interface {
	Bell()
}

// hostBell adapts a host's Bell method to the Alerter capability
type hostBell struct {
	b beller
}

func (h hostBell) Alert() { h.b.Bell() }

// noAlert is the fallback when no alert capability exists anywhere
type noAlert struct{}

func (noAlert) Alert() {}

// DefaultPrefix starts the input line ahead of the typed digits
const DefaultPrefix = "? "

// cancelledNotice overwrites the input line when the prompt is cancelled
const cancelledNotice = "Cancelled"

// Opts configures the prompt. The zero value selects all defaults.
type Opts struct {
	Prefix    string  // Input line prefix, default DefaultPrefix
	MaxDigits int     // Buffer capacity, default DefaultMaxDigits
	Bell      Alerter // Alert capability, default the host's own bell
}

// Result is the prompt outcome. Value is meaningful only when
// Confirmed is true; a cancelled prompt discards the buffer.
type Result struct {
	Confirmed bool
	Value     int
}

// Run places the prompt line at (x, y) and the input line at (x, y+1),
// then consumes keystrokes until Enter confirms a non-empty buffer or
// Escape cancels. The caller is responsible for raw mode being active;
// use Prompt for the guarded variant.
//
// Rejected keystrokes alert and keep the loop alive. The only error
// returns are collaborator faults (read failure, write failure); closed
// input cancels the prompt rather than failing it.
func Run(host Host, x, y int, prompt string, opts Opts) (Result, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}

	alert := opts.Bell
	if alert == nil {
		if b, ok := host.(beller); ok {
			alert = hostBell{b}
		} else {
			alert = noAlert{}
		}
	}

	state := NewState(opts.MaxDigits)

	// Prompt line, drawn once
	host.MoveCursor(x, y)
	host.ClearLine()
	host.Print(prompt)

	drawInputLine(host, x, y, opts.Prefix, state.Buffer)
	if err := host.Flush(); err != nil {
		return Result{}, fmt.Errorf("render prompt: %w", err)
	}

	for !state.Done() {
		ev, err := host.ReadKey()
		if err != nil {
			return Result{}, fmt.Errorf("read keystroke: %w", err)
		}

		switch ev.Type {
		case terminal.EventClosed:
			// Input gone; treat like Escape so the terminal line still
			// gets its notice and the caller sees a clean cancel
			state.Status = StatusCancelled
		case terminal.EventKey:
			if state.HandleKey(ev.Key, ev.Rune) {
				alert.Alert()
			}
		}

		if state.Done() {
			break
		}

		drawInputLine(host, x, y, opts.Prefix, state.Buffer)
		if err := host.Flush(); err != nil {
			return Result{}, fmt.Errorf("render input line: %w", err)
		}
	}

	if state.Status == StatusCancelled {
		host.MoveCursor(x, y+1)
		host.ClearLine()
		host.Print(cancelledNotice)
		if err := host.Flush(); err != nil {
			return Result{}, fmt.Errorf("render cancel notice: %w", err)
		}
		return Result{}, nil
	}

	return Result{Confirmed: true, Value: state.Buffer.Value()}, nil
}

// Prompt wraps Run with the terminal mode guard: raw mode is engaged
// immediately before the loop and the captured mode restored on every
// exit path, exactly once.
func Prompt(term terminal.Terminal, x, y int, prompt string, opts Opts) (res Result, err error) {
	if ierr := term.Init(); ierr != nil {
		return Result{}, fmt.Errorf("acquire terminal: %w", ierr)
	}
	defer func() {
		if ferr := term.Fini(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	return Run(term, x, y, prompt, opts)
}

// drawInputLine redraws the input line and parks the cursor one past
// the last digit, ready for the next keystroke
func drawInputLine(s Screen, x, y int, prefix string, buf *DigitBuffer) {
	s.MoveCursor(x, y+1)
	s.ClearLine()
	s.Print(prefix)
	s.Print(buf.String())
	s.MoveCursor(x+len(prefix)+buf.Len(), y+1)
}
