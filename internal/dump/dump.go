// Package dump renders encoded messages as diagnostic text. It is a
// consumer of the decode API only and performs no wire-format logic of
// its own.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/oscwire/internal/osc"
)

// Fprint decodes buf and writes a one-line summary of the message to w.
func Fprint(w io.Writer, buf []byte) error {
	line, err := Line(buf)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}

// Line renders one encoded message as a single diagnostic line: the byte
// count, the address, the type tags, then one token per argument.
func Line(buf []byte) (string, error) {
	msg, err := osc.Parse(buf)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d bytes] %s %s", len(buf), msg.Address(), msg.TypeTags())

	for _, tag := range msg.TypeTags() {
		arg, err := msg.NextArg(tag)
		if err != nil {
			return "", fmt.Errorf("dump: tag %q: %w", tag, err)
		}
		switch arg.Tag {
		case osc.TagInt32:
			fmt.Fprintf(&b, " %d", arg.Int32)
		case osc.TagFloat32:
			fmt.Fprintf(&b, " %g", arg.Float32)
		case osc.TagString:
			fmt.Fprintf(&b, " %s", arg.Str)
		case osc.TagBlob:
			fmt.Fprintf(&b, " [%d]", len(arg.Blob))
			for _, c := range arg.Blob {
				fmt.Fprintf(&b, "%02X", c)
			}
		case osc.TagTrue:
			b.WriteString(" true")
		case osc.TagFalse:
			b.WriteString(" false")
		case osc.TagNil:
			b.WriteString(" nil")
		case osc.TagInfinitum:
			b.WriteString(" inf")
		}
	}

	return b.String(), nil
}
