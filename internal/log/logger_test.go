package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	SetLevel(Notice)
	defer SetLevel(Notice)

	l := New("test")
	l.Debugf("hidden %d", 1)
	l.Noticef("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message leaked at notice level: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "[test]") {
		t.Fatalf("notice message missing: %q", out)
	}

	SetLevel(Debug)
	if !Enabled(Debug) {
		t.Fatal("debug should be enabled")
	}
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("debug message missing at debug level: %q", buf.String())
	}
}
