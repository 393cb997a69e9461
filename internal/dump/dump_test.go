package dump

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/danmuck/oscwire/internal/osc"
)

func TestLineAllArgumentKinds(t *testing.T) {
	buf := make([]byte, 256)
	n, err := osc.Write(buf, "/status", "ifsbTFNI",
		osc.Int32(-3),
		osc.Float32(0.5),
		osc.String("ok"),
		osc.Blob([]byte{0xaa, 0xbb}),
		osc.True(),
		osc.False(),
		osc.Nil(),
		osc.Infinitum(),
	)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	line, err := Line(buf[:n])
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	want := fmt.Sprintf("[%d bytes] /status ifsbTFNI -3 0.5 ok [2]AABB true false nil inf", n)
	if line != want {
		t.Fatalf("unexpected line:\n got %q\nwant %q", line, want)
	}
}

func TestFprintAppendsNewline(t *testing.T) {
	buf := make([]byte, 64)
	n, err := osc.Write(buf, "/ping", "")
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := Fprint(&out, buf[:n]); err != nil {
		t.Fatalf("fprint: %v", err)
	}
	if got := out.String(); got != fmt.Sprintf("[%d bytes] /ping \n", n) {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestLineMalformedBuffer(t *testing.T) {
	_, err := Line([]byte("not a message"))
	if !errors.Is(err, osc.ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestLineUnknownTag(t *testing.T) {
	buf := []byte{'/', 'a', 0, 0, ',', 'q', 0, 0}
	_, err := Line(buf)
	if !errors.Is(err, osc.ErrUnknownTypeTag) {
		t.Fatalf("expected ErrUnknownTypeTag, got %v", err)
	}
}
