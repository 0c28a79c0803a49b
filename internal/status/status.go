// Package status tracks the transient one-line message shown after user
// actions.
package status

import "time"

// ClearAfter is how long informational messages stay visible.
const ClearAfter = 3 * time.Second

// Kind classifies a message.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

// Message is the text currently on display.
type Message struct {
	Text string
	Kind Kind
}

// AutoClears reports whether the message should be cleared by a timer.
// Errors stay until replaced.
func (m Message) AutoClears() bool { return m.Kind != Error }

// Line holds at most one message. Every Set bumps a generation counter; a
// scheduled clear only applies to the generation it was scheduled for, so a
// stale timer never removes a newer message.
type Line struct {
	msg Message
	set bool
	gen uint64
}

// Set replaces the current message and returns its generation. The boolean
// tells the caller whether to schedule Clear(gen) after ClearAfter.
func (l *Line) Set(text string, kind Kind) (uint64, bool) {
	l.gen++
	l.msg = Message{Text: text, Kind: kind}
	l.set = true
	return l.gen, l.msg.AutoClears()
}

// Clear removes the message if it is still the one set at generation gen.
// It reports whether anything was cleared.
func (l *Line) Clear(gen uint64) bool {
	if !l.set || gen != l.gen {
		return false
	}
	l.msg = Message{}
	l.set = false
	return true
}

// Reset drops the current message unconditionally.
func (l *Line) Reset() {
	l.gen++
	l.msg = Message{}
	l.set = false
}

// Current returns the message on display, if any.
func (l Line) Current() (Message, bool) {
	return l.msg, l.set
}
