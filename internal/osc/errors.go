package osc

import "errors"

var (
	ErrMalformedHeader      = errors.New("osc: no type tag delimiter")
	ErrUnterminatedTypeTags = errors.New("osc: type tag string not terminated")
	ErrOutOfBounds          = errors.New("osc: read past end of message")
	ErrTruncatedString      = errors.New("osc: string argument truncated")
	ErrTruncatedBlob        = errors.New("osc: blob argument truncated")
	ErrUnknownTypeTag       = errors.New("osc: unknown type tag")
	ErrArgumentMismatch     = errors.New("osc: arguments do not match type tags")
	ErrAddressTooLong       = errors.New("osc: address missing or too long")
	ErrTypeTagsTooLong      = errors.New("osc: type tags too long")
	ErrBufferTooSmall       = errors.New("osc: destination buffer too small")
)
