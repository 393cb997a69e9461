package osc

// Message is a read-only view over one encoded message held in a
// caller-owned buffer. The view borrows the buffer and derives offsets
// into it; it is valid only while the buffer outlives it unmodified.
//
// The type tag string is the sole authority for how many arguments the
// message carries and how each is interpreted. Arguments are consumed
// once, in tag order, by the Next* methods; the cursor only moves
// forward and the sequence cannot be restarted.
type Message struct {
	buf    []byte
	addr   []byte
	tags   []byte
	cursor int
}

// Address returns the address string bytes without the terminator. The
// slice aliases the message buffer.
func (m *Message) Address() []byte { return m.addr }

// TypeTags returns the type tag string bytes without the leading comma
// or terminator. The slice aliases the message buffer.
func (m *Message) TypeTags() []byte { return m.tags }

// Size returns the total byte length of the underlying message buffer.
func (m *Message) Size() int { return len(m.buf) }

// Cursor returns the offset of the next unread argument byte.
func (m *Message) Cursor() int { return m.cursor }

// align4 rounds n up to the next multiple of 4.
func align4(n int) int { return (n + 3) &^ 3 }
