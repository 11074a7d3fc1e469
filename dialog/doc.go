// Package dialog implements a two-line modal integer prompt: a prompt
// line, an input line with a bounded digit buffer, and a blocking
// keystroke loop that ends on confirm (Enter) or cancel (Escape).
// Rejected keystrokes fire an alert and never abort the prompt.
package dialog
