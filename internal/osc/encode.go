package osc

import (
	"encoding/binary"
	"math"
)

// Write encodes one message into dst and returns the number of bytes the
// encoded message occupies, padding included. Arguments are validated
// against typeTags before any byte is written; on any error the caller
// must discard the destination contents.
func Write(dst []byte, address, typeTags string, args ...Arg) (int, error) {
	if err := checkArgs(typeTags, args); err != nil {
		return 0, err
	}
	if address == "" {
		return 0, ErrAddressTooLong
	}

	pos := align4(len(address) + 1)
	if pos > len(dst) {
		return 0, ErrAddressTooLong
	}
	tagEnd := pos + align4(len(typeTags)+2)
	if tagEnd > len(dst) {
		return 0, ErrTypeTagsTooLong
	}

	// Padding bytes must read back as zero.
	clear(dst)
	copy(dst, address)
	dst[pos] = ','
	copy(dst[pos+1:], typeTags)
	pos = tagEnd

	for _, arg := range args {
		switch arg.Tag {
		case TagInt32:
			if pos+4 > len(dst) {
				return 0, ErrBufferTooSmall
			}
			binary.BigEndian.PutUint32(dst[pos:], uint32(arg.Int32))
			pos += 4
		case TagFloat32:
			if pos+4 > len(dst) {
				return 0, ErrBufferTooSmall
			}
			binary.BigEndian.PutUint32(dst[pos:], math.Float32bits(arg.Float32))
			pos += 4
		case TagString:
			end := pos + align4(len(arg.Str)+1)
			if end > len(dst) {
				return 0, ErrBufferTooSmall
			}
			copy(dst[pos:], arg.Str)
			pos = end
		case TagBlob:
			end := pos + 4 + align4(len(arg.Blob))
			if end > len(dst) {
				return 0, ErrBufferTooSmall
			}
			binary.BigEndian.PutUint32(dst[pos:], uint32(len(arg.Blob)))
			copy(dst[pos+4:], arg.Blob)
			pos = end
		}
		// T, F, N and I write no bytes.
	}

	return pos, nil
}

// checkArgs verifies count and per-tag kind agreement between typeTags
// and args.
func checkArgs(typeTags string, args []Arg) error {
	if len(args) != len(typeTags) {
		return ErrArgumentMismatch
	}
	for i := 0; i < len(typeTags); i++ {
		switch tag := typeTags[i]; tag {
		case TagInt32, TagFloat32, TagString, TagBlob,
			TagTrue, TagFalse, TagNil, TagInfinitum:
			if args[i].Tag != tag {
				return ErrArgumentMismatch
			}
		default:
			return ErrUnknownTypeTag
		}
	}
	return nil
}
