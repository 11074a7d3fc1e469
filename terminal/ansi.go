package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiCursorPos = []byte("\x1b[") // followed by row;colH
	csiClearLine = []byte("\x1b[2K")
	csiClear     = []byte("\x1b[2J\x1b[H")
	csiSGR0      = []byte("\x1b[0m")

	// BEL, the terminal's own alert signal
	bel = []byte{0x07}
)

// writeInt writes a non-negative integer without allocation.
// Coordinates are almost always one or two digits; those take the
// byte-at-a-time fast paths.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte('0' + byte(n))
		return
	}
	if n < 100 {
		w.WriteByte('0' + byte(n/10))
		w.WriteByte('0' + byte(n%10))
		return
	}
	// Stack buffer sized for the full int64 range
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes a cursor positioning sequence.
// Columns and rows are 1-based, matching the ANSI addressing scheme.
func writeCursorPos(w *bufio.Writer, col, row int) {
	w.Write(csiCursorPos)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}
