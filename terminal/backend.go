package terminal

// Backend abstracts platform-specific terminal operations.
// Init captures the current line discipline and engages raw mode;
// Fini restores the captured state. The two calls are the mode guard
// the dialog loop is bracketed by.
type Backend interface {
	// Lifecycle
	Init() error
	Fini() error

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the poll deadline expires,
	// or an error occurs. A nil slice with nil error means the deadline
	// expired with nothing pending; the decoder uses that to recognize
	// a lone ESC keypress.
	Read() ([]byte, error)
}
