package glint

import "unicode/utf8"

// Parser is a byte-stream state machine that turns raw terminal bytes
// into events. It owns a FIFO queue of undecoded bytes so that escape
// sequences and multi-byte UTF-8 characters split across reads are
// reassembled before decoding.
type Parser struct {
	buf []byte
}

// NewParser creates a new, empty parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse appends data to the residual queue and consumes as many complete
// events as possible from the front. It stops when the queue is empty or
// its front is an incomplete prefix of a longer sequence; the leftover
// bytes stay queued for the next call.
func (p *Parser) Parse(data []byte) []Event {
	p.buf = append(p.buf, data...)
	var events []Event

	for len(p.buf) > 0 {
		switch b := p.buf[0]; {
		case b == '\r':
			events = append(events, KeyEvent{Key: KeyEnter})
			p.consume(1)

		case b == 0x1b:
			ev, done := p.parseEscape()
			if !done {
				return events // incomplete, wait for more bytes
			}
			events = append(events, ev)

		default:
			ev, ok, done := p.parseUTF8()
			if !done {
				return events // incomplete, wait for more bytes
			}
			if ok {
				events = append(events, ev)
			}
		}
	}

	return events
}

// parseEscape decodes a sequence starting with ESC at the queue front.
// Returns done=false when the queue holds an incomplete prefix.
func (p *Parser) parseEscape() (ev Event, done bool) {
	if len(p.buf) == 1 {
		return nil, false
	}

	if p.buf[1] != '[' {
		// Not a CSI introducer. Emit a bare Escape and leave the rest of
		// the queue for reprocessing.
		p.consume(1)
		return KeyEvent{Key: KeyEscape}, true
	}

	if len(p.buf) < 3 {
		return nil, false
	}

	switch p.buf[2] {
	case 'A':
		p.consume(3)
		return KeyEvent{Key: KeyUp}, true

	case 'M':
		// X10 mouse report: 3 header bytes then button, x, y.
		if len(p.buf) < 6 {
			return nil, false
		}
		button, x, y := p.buf[3], p.buf[4], p.buf[5]
		p.consume(6)
		return MouseEvent{
			X:    int(saturatingSub(x, 33)),
			Y:    int(saturatingSub(y, 33)),
			Kind: mouseKindFromButton(button),
		}, true

	default:
		// Unrecognized CSI final byte. Fall back to a bare Escape and
		// consume only the ESC byte so the remainder is reprocessed.
		p.consume(1)
		return KeyEvent{Key: KeyEscape}, true
	}
}

// parseUTF8 decodes one UTF-8 scalar from the queue front.
// ok=false with done=true means bytes were dropped without an event
// (invalid encoding); done=false means the sequence is still incomplete.
func (p *Parser) parseUTF8() (ev Event, ok, done bool) {
	width := utf8Width(p.buf[0])
	if width == 0 {
		// Invalid leading byte: drop it and resynchronize.
		p.consume(1)
		return nil, false, true
	}
	if len(p.buf) < width {
		return nil, false, false
	}

	r, size := utf8.DecodeRune(p.buf[:width])
	p.consume(width)
	if r == utf8.RuneError && size <= 1 {
		// Malformed continuation bytes: dropped, no event.
		return nil, false, true
	}
	return KeyEvent{Key: KeyRune, Rune: r}, true, true
}

// HasPending reports whether undecoded bytes remain queued.
func (p *Parser) HasPending() bool {
	return len(p.buf) > 0
}

// FinishIncomplete forcibly finalizes the residual queue. It is called
// when the poll window expires: a queue starting with ESC becomes one
// Escape key event, and everything left is discarded either way.
func (p *Parser) FinishIncomplete() []Event {
	if len(p.buf) == 0 {
		return nil
	}

	var events []Event
	if p.buf[0] == 0x1b {
		events = append(events, KeyEvent{Key: KeyEscape})
	}
	p.buf = p.buf[:0]
	return events
}

func (p *Parser) consume(n int) {
	p.buf = p.buf[n:]
}

// mouseKindFromButton maps an X10 button byte to a MouseKind.
func mouseKindFromButton(button byte) MouseKind {
	switch saturatingSub(button, 32) {
	case 0:
		return MouseLeftClick
	case 1:
		return MouseMiddleClick
	case 2:
		return MouseRightClick
	case 64:
		return MouseScrollUp
	case 65:
		return MouseScrollDown
	default:
		return MouseOther
	}
}

// saturatingSub subtracts b from a, clamping at zero.
func saturatingSub(a, b byte) byte {
	if a < b {
		return 0
	}
	return a - b
}

// utf8Width returns the byte length of a UTF-8 sequence from its leading
// byte, or 0 if the byte cannot start a sequence.
func utf8Width(b byte) int {
	switch {
	case b&0b1000_0000 == 0:
		return 1
	case b&0b1110_0000 == 0b1100_0000:
		return 2
	case b&0b1111_0000 == 0b1110_0000:
		return 3
	case b&0b1111_1000 == 0b1111_0000:
		return 4
	default:
		return 0
	}
}
