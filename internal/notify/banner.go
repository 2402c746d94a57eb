// Package notify holds the transient status banner.
//
// Showing a message hands out a sequence number. The caller schedules a clear
// carrying that number; Expire only clears when no newer message has been
// shown since, so the latest message always gets its full Delay.
package notify

import "time"

// Delay is how long a message stays up.
const Delay = 2 * time.Second

// Banner is idle when Text is empty.
type Banner struct {
	text string
	seq  uint64
}

// Show replaces the current message and returns the token for its clear.
func (b *Banner) Show(text string) uint64 {
	b.seq++
	b.text = text
	return b.seq
}

// Expire clears the message if seq is still the latest token.
func (b *Banner) Expire(seq uint64) bool {
	if seq != b.seq || b.text == "" {
		return false
	}
	b.text = ""
	return true
}

// Text is the message on display, empty when idle.
func (b *Banner) Text() string { return b.text }

// Showing reports whether a message is up.
func (b *Banner) Showing() bool { return b.text != "" }
