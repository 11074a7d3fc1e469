package dialog

import (
	"testing"
)

func TestDigitBufferPushPop(t *testing.T) {
	buf := NewDigitBuffer(3)

	if !buf.Empty() {
		t.Error("Expected new buffer to be empty")
	}

	if !buf.Push('4') || !buf.Push('2') {
		t.Fatal("Expected pushes below capacity to succeed")
	}
	if buf.Len() != 2 {
		t.Errorf("Expected length 2, got %d", buf.Len())
	}
	if buf.String() != "42" {
		t.Errorf("Expected contents \"42\", got %q", buf.String())
	}

	if !buf.Pop() {
		t.Error("Expected pop on non-empty buffer to succeed")
	}
	if buf.String() != "4" {
		t.Errorf("Expected contents \"4\" after pop, got %q", buf.String())
	}

	buf.Pop()
	if buf.Pop() {
		t.Error("Expected pop on empty buffer to fail")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected length 0 after failed pop, got %d", buf.Len())
	}
}

func TestDigitBufferCapacity(t *testing.T) {
	buf := NewDigitBuffer(2)

	buf.Push('1')
	buf.Push('2')
	if !buf.Full() {
		t.Error("Expected buffer at capacity to report full")
	}
	if buf.Push('3') {
		t.Error("Expected push past capacity to fail")
	}
	if buf.String() != "12" {
		t.Errorf("Expected contents unchanged after rejected push, got %q", buf.String())
	}
}

func TestDigitBufferRejectsNonDigits(t *testing.T) {
	buf := NewDigitBuffer(5)

	for _, c := range []byte{'a', ' ', '-', '.', 0x00} {
		if buf.Push(c) {
			t.Errorf("Expected push of %q to fail", c)
		}
	}
	if !buf.Empty() {
		t.Errorf("Expected buffer to stay empty, got %q", buf.String())
	}
}

func TestDigitBufferValue(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{"Empty", "", 0},
		{"Single digit", "7", 7},
		{"Multiple digits", "1234", 1234},
		{"Leading zeros", "0047", 47},
		{"All zeros", "000", 0},
		{"Ten digits at int32 edge", "2147483647", 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewDigitBuffer(DefaultMaxDigits)
			for i := 0; i < len(tt.digits); i++ {
				if !buf.Push(tt.digits[i]) {
					t.Fatalf("Push of %q failed", tt.digits[i])
				}
			}
			if got := buf.Value(); got != tt.want {
				t.Errorf("Expected value %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDigitBufferDefaultCapacity(t *testing.T) {
	buf := NewDigitBuffer(0)
	for i := 0; i < DefaultMaxDigits; i++ {
		if !buf.Push('9') {
			t.Fatalf("Push %d of %d failed", i+1, DefaultMaxDigits)
		}
	}
	if buf.Push('9') {
		t.Errorf("Expected push %d to fail", DefaultMaxDigits+1)
	}
}
