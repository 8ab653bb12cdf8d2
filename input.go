package glint

import (
	"fmt"
	"time"
)

const (
	// readChunkSize is the most bytes pulled from the device per read.
	readChunkSize = 1024

	// escTimeout bounds how long the input cycle waits for the rest of a
	// partially received escape sequence before treating it as complete.
	escTimeout = 50 * time.Millisecond
)

// Input composes the Parser with a Terminal to produce events. One Read
// call performs a full input cycle: a blocking device read, then short
// bounded polls while the parser holds incomplete state. This resolves
// the ambiguity between a bare Escape press and the start of a longer
// sequence while tolerating syscall-level fragmentation.
type Input struct {
	parser *Parser
	buf    [readChunkSize]byte
}

// NewInput creates a new input handler.
func NewInput() *Input {
	return &Input{parser: NewParser()}
}

// Read blocks until at least one byte arrives (or the device reports no
// data) and returns the decoded events. While the parser reports pending
// state it polls the device for up to 50ms per round; on timeout or poll
// error the pending state is force-finalized.
//
// An error from the initial blocking read is returned to the caller; the
// runtime loop aborts on it.
func (in *Input) Read(term *Terminal) ([]Event, error) {
	n, err := term.Read(in.buf[:])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	events := in.parser.Parse(in.buf[:n])

	for in.parser.HasPending() {
		ready, err := term.Poll(escTimeout)
		if err != nil || !ready {
			events = append(events, in.parser.FinishIncomplete()...)
			break
		}
		n, err := term.Read(in.buf[:])
		if err != nil || n == 0 {
			// EOF while a sequence is half-read gets the same treatment
			// as a timeout.
			events = append(events, in.parser.FinishIncomplete()...)
			break
		}
		events = append(events, in.parser.Parse(in.buf[:n])...)
	}

	return events, nil
}

// HasPending reports whether the decoder is holding an incomplete
// sequence between Read calls.
func (in *Input) HasPending() bool {
	return in.parser.HasPending()
}
