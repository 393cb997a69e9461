package osc

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Parse reads the header of one encoded message and returns a view whose
// cursor sits at the first argument byte. buf must hold exactly one
// complete message; it is borrowed, never copied.
//
// The address region is not required to carry its own terminator before
// the delimiter comma; if none is present the address runs up to the
// comma. Inputs of that shape are accepted for compatibility.
func Parse(buf []byte) (Message, error) {
	comma := bytes.IndexByte(buf, ',')
	if comma < 0 {
		return Message{}, ErrMalformedHeader
	}
	term := bytes.IndexByte(buf[comma:], 0)
	if term < 0 {
		return Message{}, ErrUnterminatedTypeTags
	}
	term += comma

	addrEnd := comma
	if nul := bytes.IndexByte(buf[:comma], 0); nul >= 0 {
		addrEnd = nul
	}

	cursor := (term + 4) &^ 3
	if cursor > len(buf) {
		cursor = len(buf)
	}

	return Message{
		buf:    buf,
		addr:   buf[:addrEnd],
		tags:   buf[comma+1 : term],
		cursor: cursor,
	}, nil
}

// NextInt32 consumes one 'i' argument.
func (m *Message) NextInt32() (int32, error) {
	if m.cursor+4 > len(m.buf) {
		return 0, ErrOutOfBounds
	}
	v := int32(binary.BigEndian.Uint32(m.buf[m.cursor:]))
	m.cursor += 4
	return v, nil
}

// NextFloat32 consumes one 'f' argument.
func (m *Message) NextFloat32() (float32, error) {
	if m.cursor+4 > len(m.buf) {
		return 0, ErrOutOfBounds
	}
	bits := binary.BigEndian.Uint32(m.buf[m.cursor:])
	m.cursor += 4
	return math.Float32frombits(bits), nil
}

// NextString consumes one 's' argument and returns its bytes without the
// terminator. The slice aliases the message buffer.
func (m *Message) NextString() ([]byte, error) {
	n := bytes.IndexByte(m.buf[m.cursor:], 0)
	if n < 0 {
		return nil, ErrTruncatedString
	}
	end := m.cursor + align4(n+1)
	if end > len(m.buf) {
		return nil, ErrTruncatedString
	}
	s := m.buf[m.cursor : m.cursor+n]
	m.cursor = end
	return s, nil
}

// NextBlob consumes one 'b' argument and returns its payload bytes. The
// slice aliases the message buffer.
func (m *Message) NextBlob() ([]byte, error) {
	if m.cursor+4 > len(m.buf) {
		return nil, ErrOutOfBounds
	}
	n := int(binary.BigEndian.Uint32(m.buf[m.cursor:]))
	if n < 0 || n > len(m.buf)-m.cursor-4 {
		return nil, ErrTruncatedBlob
	}
	end := m.cursor + 4 + align4(n)
	if end > len(m.buf) {
		return nil, ErrTruncatedBlob
	}
	b := m.buf[m.cursor+4 : m.cursor+4+n]
	m.cursor = end
	return b, nil
}

// NextArg consumes one argument selected by tag and returns it as a
// tagged value. String values are copied out of the buffer; blob values
// still alias it.
func (m *Message) NextArg(tag byte) (Arg, error) {
	switch tag {
	case TagInt32:
		v, err := m.NextInt32()
		if err != nil {
			return Arg{}, err
		}
		return Int32(v), nil
	case TagFloat32:
		v, err := m.NextFloat32()
		if err != nil {
			return Arg{}, err
		}
		return Float32(v), nil
	case TagString:
		s, err := m.NextString()
		if err != nil {
			return Arg{}, err
		}
		return String(string(s)), nil
	case TagBlob:
		b, err := m.NextBlob()
		if err != nil {
			return Arg{}, err
		}
		return Blob(b), nil
	case TagTrue:
		return True(), nil
	case TagFalse:
		return False(), nil
	case TagNil:
		return Nil(), nil
	case TagInfinitum:
		return Infinitum(), nil
	default:
		return Arg{}, ErrUnknownTypeTag
	}
}

// Args drives the whole type tag string once and returns every argument
// in order. It consumes the view; call it only on a freshly parsed
// message.
func (m *Message) Args() ([]Arg, error) {
	if len(m.tags) == 0 {
		return nil, nil
	}
	args := make([]Arg, 0, len(m.tags))
	for _, tag := range m.tags {
		arg, err := m.NextArg(tag)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
