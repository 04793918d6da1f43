package trust

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test: ")
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("shown %d", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug output to be masked at the default level, got:\n%s", out)
	}
	if !strings.Contains(out, "test:  INFO: shown 2") || !strings.Contains(out, "test: ERROR: shown 3") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if prev := l.SetLevel(ErrorMask | DebugMask); prev != LevelInfo {
		t.Errorf("expected previous level %s, got %s", LevelInfo, prev)
	}
	buf.Reset()
	l.Infof("masked")
	l.Debugf("debug")
	if got := buf.String(); got != "test: DEBUG: debug\n" {
		t.Errorf("expected only the debug line, got %q", got)
	}
}

func TestMaskString(t *testing.T) {
	cases := map[MaskLevel]string{
		Nothing:               "nothing",
		LevelWarn:             "error warn",
		ErrorMask | DebugMask: "error debug",
		LevelDebug:            "error warn info debug",
	}
	for m, want := range cases {
		if m.String() != want {
			t.Errorf("%d: expected %q but got %q", m, want, m.String())
		}
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(ErrorMask) {
		t.Errorf("expected Discard to mask everything")
	}
	l.Errorf("nowhere")
}
