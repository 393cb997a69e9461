package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" warn ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"bogus", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLevel(%q) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !v || !ok {
		t.Fatalf("expected true, set")
	}
	if _, ok := parseBool(""); ok {
		t.Fatalf("empty value must not count as set")
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatalf("invalid value must not count as set")
	}
}
