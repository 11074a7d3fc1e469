package terminal

import (
	"io"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventError
	EventClosed // Input reached EOF
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Err       error // For EventError
}

// decoder assembles raw backend reads into key events, one event per
// call. It is synchronous: the caller blocks at ReadKey until a complete
// keystroke is available.
type decoder struct {
	backend Backend

	// Persistent buffer for stream assembly; escape sequences and UTF-8
	// runes may straddle read boundaries
	buf []byte
}

func newDecoder(backend Backend) *decoder {
	return &decoder{
		backend: backend,
		buf:     make([]byte, 0, 256),
	}
}

// readKey blocks until one keystroke is decoded.
// Unknown but well-formed escape sequences are consumed and dropped so
// their bytes never surface as spurious runes.
func (d *decoder) readKey() (Event, error) {
	for {
		for {
			ev, n := d.decodeOne(d.buf)
			if n == 0 {
				break
			}
			d.consume(n)
			if ev.Key == KeyNone {
				continue // Swallowed unknown sequence
			}
			return ev, nil
		}

		data, err := d.backend.Read()
		if err == io.EOF {
			return Event{Type: EventClosed}, nil
		}
		if err != nil {
			return Event{Type: EventError, Err: err}, err
		}

		if data == nil {
			// Poll timeout: a pending lone ESC is a real Escape keypress,
			// not the start of a sequence
			if len(d.buf) == 1 && d.buf[0] == 0x1b {
				d.buf = d.buf[:0]
				return Event{Type: EventKey, Key: KeyEscape}, nil
			}
			continue
		}

		d.buf = append(d.buf, data...)
	}
}

// consume drops n decoded bytes from the front of the buffer
func (d *decoder) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}

// decodeOne decodes a single event from data, returning bytes consumed.
// Zero consumed means the data is an incomplete prefix and more bytes
// are needed.
func (d *decoder) decodeOne(data []byte) (Event, int) {
	if len(data) == 0 {
		return Event{}, 0
	}

	b := data[0]

	// Fast path: printable ASCII
	if b >= 0x20 && b < 0x7f {
		return Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}, 1
	}

	// Escape sequence
	if b == 0x1b {
		return decodeEscape(data)
	}

	// Control characters
	if b < 0x20 {
		return decodeControl(b), 1
	}

	// DEL
	if b == 0x7f {
		return Event{Type: EventKey, Key: KeyBackspace}, 1
	}

	// UTF-8 multibyte
	seqLen := utf8SeqLen(b)
	if seqLen == 0 {
		// Invalid start byte, drop it
		return Event{Type: EventKey, Key: KeyNone}, 1
	}
	if len(data) < seqLen {
		return Event{}, 0 // Incomplete, wait for more
	}
	rn, size := utf8.DecodeRune(data)
	return Event{Type: EventKey, Key: KeyRune, Rune: rn}, size
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}

// decodeEscape attempts to parse an escape sequence, returns 0 on incomplete
func decodeEscape(data []byte) (Event, int) {
	if len(data) < 2 {
		return Event{}, 0 // Incomplete, wait for more
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, 2
	}

	if data[1] == '[' {
		return decodeCSI(data)
	}
	if data[1] == 'O' {
		return decodeSS3(data)
	}

	// Alt+control character
	if data[1] < 0x20 {
		ev := decodeControl(data[1])
		ev.Modifiers |= ModAlt
		return ev, 2
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}, 2
	}

	// DEL after ESC is Alt+Backspace in most terminals
	if data[1] == 0x7f {
		return Event{Type: EventKey, Key: KeyBackspace, Modifiers: ModAlt}, 2
	}

	// ESC plus a high byte carries no keystroke. Consume both; leaving
	// them pending would stall every keystroke behind them
	return Event{Type: EventKey, Key: KeyNone}, 2
}

// csiScanCap bounds CSI parameter scanning; no sequence the prompt
// cares about comes close, so anything longer is runaway input
const csiScanCap = 16

// decodeCSI parses a CSI sequence without allocation
func decodeCSI(data []byte) (Event, int) {
	if len(data) < 3 {
		return Event{}, 0
	}

	end := 2
	maxScan := len(data)
	if maxScan > csiScanCap {
		maxScan = csiScanCap
	}

	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			if key, mod, ok := lookupCSI(data[2:end]); ok {
				return Event{Type: EventKey, Key: key, Modifiers: mod}, end
			}
			// Unknown but valid CSI syntax - consume and drop
			return Event{Type: EventKey, Key: KeyNone}, end
		}
		if b < 0x20 || b > 0x7e {
			// Malformed sequence. Drop the scanned prefix and let the
			// stray byte decode on its own
			return Event{Type: EventKey, Key: KeyNone}, end
		}
		end++
	}

	if end >= csiScanCap {
		// Scan cap hit with no terminator. Drop what was scanned rather
		// than wait for a terminator that may never arrive
		return Event{Type: EventKey, Key: KeyNone}, end
	}

	return Event{}, 0 // Incomplete
}

// decodeSS3 parses an SS3 sequence, consuming unknown ones to prevent garbage
func decodeSS3(data []byte) (Event, int) {
	if len(data) < 3 {
		return Event{}, 0
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return Event{Type: EventKey, Key: key, Modifiers: mod}, 3
	}
	return Event{Type: EventKey, Key: KeyNone}, 3
}

// decodeControl maps control characters to keys
func decodeControl(b byte) Event {
	switch b {
	case 0x08: // Ctrl+H or Backspace
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b: // ESC (shouldn't reach here normally)
		return Event{Type: EventKey, Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrl, Rune: rune('a' + b - 0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}
