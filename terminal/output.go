package terminal

import (
	"bufio"
)

// screenWriter performs direct cursor-addressed writes through a
// buffered writer. There is no cell buffer or diffing; a modal prompt
// touches two lines and redraws them wholesale, so buffered sequences
// flushed per frame are enough.
type screenWriter struct {
	writer *bufio.Writer
}

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	backend Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func newScreenWriter(backend Backend) *screenWriter {
	return &screenWriter{
		writer: bufio.NewWriterSize(backendWriter{backend}, 4096),
	}
}

// moveCursor positions the cursor (1-based column and row)
func (s *screenWriter) moveCursor(col, row int) {
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	writeCursorPos(s.writer, col, row)
}

// clearLine erases the line the cursor is on without moving it
func (s *screenWriter) clearLine() {
	s.writer.Write(csiClearLine)
}

// clear erases the whole screen and homes the cursor
func (s *screenWriter) clear() {
	s.writer.Write(csiClear)
}

// print writes text at the cursor; the cursor advances past it
func (s *screenWriter) print(text string) {
	s.writer.WriteString(text)
}

// bell emits the terminal alert signal immediately
func (s *screenWriter) bell() {
	s.writer.Write(bel)
	s.writer.Flush()
}

// reset clears any lingering SGR attributes
func (s *screenWriter) reset() {
	s.writer.Write(csiSGR0)
}

func (s *screenWriter) flush() error {
	return s.writer.Flush()
}
