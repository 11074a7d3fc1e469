package dialog

import (
	"testing"

	"github.com/lixenwraith/numdial/terminal"
)

type keystroke struct {
	key terminal.Key
	r   rune
}

func digit(r rune) keystroke { return keystroke{terminal.KeyRune, r} }

var (
	pressEnter  = keystroke{key: terminal.KeyEnter}
	pressEscape = keystroke{key: terminal.KeyEscape}
	pressDelete = digit(DeleteRune)
)

// feed runs keystrokes through the state, returning total alerts fired
func feed(s *State, keys ...keystroke) int {
	alerts := 0
	for _, k := range keys {
		if s.HandleKey(k.key, k.r) {
			alerts++
		}
	}
	return alerts
}

func TestConfirmParsesDigits(t *testing.T) {
	tests := []struct {
		name string
		keys []keystroke
		want int
	}{
		{"Single digit", []keystroke{digit('9'), pressEnter}, 9},
		{"Multiple digits", []keystroke{digit('1'), digit('0'), digit('3'), pressEnter}, 103},
		{"Leading zeros", []keystroke{digit('0'), digit('0'), digit('7'), pressEnter}, 7},
		{"Delete then retype", []keystroke{digit('4'), digit('2'), pressDelete, digit('7'), pressEnter}, 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(0)
			alerts := feed(s, tt.keys...)
			if alerts != 0 {
				t.Errorf("Expected no alerts, got %d", alerts)
			}
			if s.Status != StatusConfirmed {
				t.Fatalf("Expected StatusConfirmed, got %d", s.Status)
			}
			if got := s.Buffer.Value(); got != tt.want {
				t.Errorf("Expected value %d, got %d", tt.want, got)
			}
		})
	}
}

func TestEscapeCancelsRegardlessOfBuffer(t *testing.T) {
	tests := []struct {
		name string
		keys []keystroke
	}{
		{"Empty buffer", []keystroke{pressEscape}},
		{"After digits", []keystroke{digit('1'), digit('2'), pressEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(0)
			last := tt.keys[len(tt.keys)-1]
			feed(s, tt.keys[:len(tt.keys)-1]...)
			if s.HandleKey(last.key, last.r) {
				t.Error("Expected Escape to fire no alert")
			}
			if s.Status != StatusCancelled {
				t.Errorf("Expected StatusCancelled, got %d", s.Status)
			}
		})
	}
}

func TestEnterOnEmptyBufferAlertsAndStays(t *testing.T) {
	s := NewState(0)

	if !s.HandleKey(terminal.KeyEnter, 0) {
		t.Error("Expected exactly one alert for Enter on empty buffer")
	}
	if s.Done() {
		t.Fatal("Expected state to remain editing")
	}

	// Recovery: a digit then Enter confirms
	alerts := feed(s, digit('9'), pressEnter)
	if alerts != 0 {
		t.Errorf("Expected no further alerts, got %d", alerts)
	}
	if s.Status != StatusConfirmed || s.Buffer.Value() != 9 {
		t.Errorf("Expected Confirmed(9), got status %d value %d", s.Status, s.Buffer.Value())
	}
}

func TestDeleteOnEmptyBufferAlerts(t *testing.T) {
	s := NewState(0)

	if !s.HandleKey(terminal.KeyRune, DeleteRune) {
		t.Error("Expected exactly one alert for delete on empty buffer")
	}
	if s.Buffer.Len() != 0 {
		t.Errorf("Expected buffer length unchanged, got %d", s.Buffer.Len())
	}
	if s.Done() {
		t.Error("Expected state to remain editing")
	}
}

func TestDigitAtCapacityAlerts(t *testing.T) {
	s := NewState(3)
	feed(s, digit('1'), digit('2'), digit('3'))

	if !s.HandleKey(terminal.KeyRune, '4') {
		t.Error("Expected exactly one alert for digit on full buffer")
	}
	if got := s.Buffer.String(); got != "123" {
		t.Errorf("Expected buffer unchanged, got %q", got)
	}
	if s.Done() {
		t.Error("Expected state to remain editing")
	}
}

func TestUnrecognizedKeystrokesAlert(t *testing.T) {
	tests := []struct {
		name string
		key  terminal.Key
		r    rune
	}{
		{"Letter", terminal.KeyRune, 'x'},
		{"Space", terminal.KeyRune, ' '},
		{"Punctuation", terminal.KeyRune, '-'},
		{"Unicode", terminal.KeyRune, 'é'},
		{"Backspace key", terminal.KeyBackspace, 0},
		{"Tab", terminal.KeyTab, 0},
		{"Arrow", terminal.KeyUp, 0},
		{"Function key", terminal.KeyF5, 0},
		{"Ctrl chord", terminal.KeyCtrl, 'c'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(0)
			feed(s, digit('5'))

			if !s.HandleKey(tt.key, tt.r) {
				t.Error("Expected exactly one alert")
			}
			if got := s.Buffer.String(); got != "5" {
				t.Errorf("Expected buffer unchanged, got %q", got)
			}
			if s.Done() {
				t.Error("Expected state to remain editing")
			}
		})
	}
}

func TestNoTransitionsAfterDone(t *testing.T) {
	s := NewState(0)
	feed(s, digit('1'), pressEnter)

	if s.HandleKey(terminal.KeyEscape, 0) {
		t.Error("Expected no alert after terminal status")
	}
	if s.Status != StatusConfirmed {
		t.Errorf("Expected status to stay Confirmed, got %d", s.Status)
	}
}
