// Package terminal provides raw-mode terminal access for modal prompts:
// a platform backend that owns the termios mode guard, a synchronous
// keystroke decoder, and a cursor-addressed screen writer. A tcell bridge
// lets applications that already run a tcell.Screen host the same prompts
// without a second raw-mode owner.
package terminal
