package terminal

import (
	"sync"
)

// Terminal provides low-level terminal access for a modal prompt:
// raw-mode lifecycle, cursor-addressed writes, and blocking key reads.
// Unlike a full-screen renderer it does not switch to the alternate
// screen buffer; prompts overlay whatever the caller already drew.
type Terminal interface {
	// Init captures the terminal mode and enters raw mode
	Init() error

	// Fini restores the captured mode. Safe to call multiple times;
	// the restore happens exactly once
	Fini() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// MoveCursor positions the cursor (1-based column and row)
	MoveCursor(col, row int)

	// ClearLine erases the line the cursor is on
	ClearLine()

	// Clear erases the whole screen and homes the cursor
	Clear()

	// Print writes text at the cursor position
	Print(text string)

	// Flush writes buffered output to the terminal
	Flush() error

	// Bell emits the terminal alert signal
	Bell()

	// ReadKey blocks until the next keystroke is decoded
	ReadKey() (Event, error)
}

// termImpl implements Terminal over the Backend interface
type termImpl struct {
	backend Backend
	out     *screenWriter
	dec     *decoder

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on the process's stdin/stdout.
func New() Terminal {
	b := newBackend()
	return &termImpl{
		backend: b,
		out:     newScreenWriter(b),
		dec:     newDecoder(b),
	}
}

// NewWithBackend creates a Terminal over a custom backend.
// Tests substitute a scripted backend here.
func NewWithBackend(b Backend) Terminal {
	return &termImpl{
		backend: b,
		out:     newScreenWriter(b),
		dec:     newDecoder(b),
	}
}

// Init enters raw mode
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.initialized = true
	t.finalized = false
	return nil
}

// Fini restores terminal state exactly once
func (t *termImpl) Fini() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	// Drop any half-written sequences, reset attributes
	t.out.reset()
	t.out.flush()

	err := t.backend.Fini()
	t.finalized = true
	t.initialized = false
	return err
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) MoveCursor(col, row int) {
	t.out.moveCursor(col, row)
}

func (t *termImpl) ClearLine() {
	t.out.clearLine()
}

func (t *termImpl) Clear() {
	t.out.clear()
}

func (t *termImpl) Print(text string) {
	t.out.print(text)
}

func (t *termImpl) Flush() error {
	return t.out.flush()
}

func (t *termImpl) Bell() {
	t.out.bell()
}

func (t *termImpl) ReadKey() (Event, error) {
	return t.dec.readKey()
}
