package dialog

import (
	"github.com/lixenwraith/numdial/terminal"
)

// Status represents the prompt outcome
type Status uint8

const (
	StatusEditing Status = iota
	StatusConfirmed
	StatusCancelled
)

// DeleteRune is the single-character delete binding. The prompt accepts
// digits only, so a letter is free to act as backspace.
const DeleteRune = 'd'

// State holds the prompt's edit state machine: the digit buffer plus
// the editing/confirmed/cancelled status. All transitions go through
// HandleKey; once the status leaves StatusEditing no further transition
// is possible.
type State struct {
	Buffer *DigitBuffer
	Status Status
}

// NewState creates prompt state with an empty buffer
func NewState(maxDigits int) *State {
	return &State{
		Buffer: NewDigitBuffer(maxDigits),
		Status: StatusEditing,
	}
}

// Done reports whether the prompt reached a terminal status
func (s *State) Done() bool {
	return s.Status != StatusEditing
}

// HandleKey processes one keystroke and returns true when the keystroke
// was rejected and an alert should fire. Rejections never change the
// buffer or the status:
//   - Enter on an empty buffer
//   - delete on an empty buffer
//   - a digit when the buffer is full
//   - anything that is not a digit, delete, Enter, or Escape
func (s *State) HandleKey(key terminal.Key, r rune) bool {
	if s.Done() {
		return false
	}

	switch key {
	case terminal.KeyEscape:
		s.Status = StatusCancelled
		return false

	case terminal.KeyEnter:
		if s.Buffer.Empty() {
			return true
		}
		s.Status = StatusConfirmed
		return false

	case terminal.KeyRune:
		if r == DeleteRune {
			return !s.Buffer.Pop()
		}
		if r >= '0' && r <= '9' {
			return !s.Buffer.Push(byte(r))
		}
	}

	return true
}
