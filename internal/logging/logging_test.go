package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

func TestLogfDisabledByDefault(t *testing.T) {
	var l Logger
	l.Logf("1", "should go nowhere")
	if l.Enabled() {
		t.Fatalf("Enabled() = true without a writer")
	}

	var nilLogger *Logger
	nilLogger.Logf("1", "must not panic")
	nilLogger.Warnf("must not panic")
}

func TestLogfFormat(t *testing.T) {
	ui.Init(true)
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "Run:"}

	l.Logf("7", "solved in %d tries", 2)
	if got := buf.String(); got != "Run: day=7 solved in 2 tries\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogfDefaultsUnknownDay(t *testing.T) {
	ui.Init(true)
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "Run:"}

	l.Logf("  ", "hello")
	if got := buf.String(); got != "Run: day=(unknown) hello\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogfOmitDay(t *testing.T) {
	ui.Init(true)
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "Cache:", OmitDay: true}

	l.Logf("7", "committed")
	if got := buf.String(); got != "Cache: committed\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogfColorsPrefix(t *testing.T) {
	ui.Init(false)
	defer ui.Init(true)

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "Web:", PrefixColor: ui.FgMagenta}

	l.Logf("3", "fetching input")
	got := buf.String()
	if !strings.HasPrefix(got, ui.FgMagenta+"Web:"+ui.Reset) {
		t.Fatalf("output = %q, want colored prefix", got)
	}
}

func TestWarnf(t *testing.T) {
	ui.Init(true)
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "Cache:"}

	l.Warnf("file %q changed on disk", "answer_cache.json")
	if got := buf.String(); got != "Warning: file \"answer_cache.json\" changed on disk\n" {
		t.Fatalf("output = %q", got)
	}
}
