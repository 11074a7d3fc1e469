package dialog

// DefaultMaxDigits bounds the buffer at ten digits, so any accepted
// value fits a 64-bit int and Value needs no overflow check.
const DefaultMaxDigits = 10

// DigitBuffer is a capacity-bounded ordered sequence of ASCII digits.
// It mutates only by Push (append one digit) and Pop (remove the last),
// keeping the length within [0, cap] at all times.
type DigitBuffer struct {
	digits []byte
	max    int
}

// NewDigitBuffer creates an empty buffer holding at most max digits.
// Non-positive max falls back to DefaultMaxDigits.
func NewDigitBuffer(max int) *DigitBuffer {
	if max <= 0 {
		max = DefaultMaxDigits
	}
	return &DigitBuffer{
		digits: make([]byte, 0, max),
		max:    max,
	}
}

// Len returns the current digit count
func (b *DigitBuffer) Len() int {
	return len(b.digits)
}

// Empty reports whether the buffer holds no digits
func (b *DigitBuffer) Empty() bool {
	return len(b.digits) == 0
}

// Full reports whether the buffer is at capacity
func (b *DigitBuffer) Full() bool {
	return len(b.digits) >= b.max
}

// Push appends one digit character. It refuses non-digits and refuses
// to grow past capacity, returning false either way.
func (b *DigitBuffer) Push(c byte) bool {
	if c < '0' || c > '9' {
		return false
	}
	if b.Full() {
		return false
	}
	b.digits = append(b.digits, c)
	return true
}

// Pop removes the last digit, returning false on an empty buffer.
func (b *DigitBuffer) Pop() bool {
	if b.Empty() {
		return false
	}
	b.digits = b.digits[:len(b.digits)-1]
	return true
}

// String renders the buffer contents as typed
func (b *DigitBuffer) String() string {
	return string(b.digits)
}

// Value parses the contents as a base-10 non-negative integer.
// Leading zeros carry no weight; the empty buffer parses as 0.
func (b *DigitBuffer) Value() int {
	v := 0
	for _, d := range b.digits {
		v = v*10 + int(d-'0')
	}
	return v
}
