package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestOutputMessages(t *testing.T) {
	setNoColor(t, true)

	tests := []struct {
		name  string
		write func(u *UI)
		want  string
	}{
		{name: "info", write: func(u *UI) { u.Infof("loaded %d file(s)", 2) }, want: "[INFO] loaded 2 file(s)\n"},
		{name: "success", write: func(u *UI) { u.Success("done") }, want: "[✓] done\n"},
		{name: "warning", write: func(u *UI) { u.Warningf("%s is missing", "x") }, want: "[WARNING] x is missing\n"},
		{name: "error", write: func(u *UI) { u.Error("failed") }, want: "[ERROR] failed\n"},
		{name: "printf", write: func(u *UI) { u.Printf("%s=%s", "a", "b") }, want: "a=b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewWithWriter(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputHeader(t *testing.T) {
	setNoColor(t, true)

	var buf bytes.Buffer
	NewWithWriter(&buf).Header("Workspace")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Header() wrote %d lines, want 3: %q", len(lines), buf.String())
	}
	if lines[0] != strings.Repeat("=", ruleWidth) || lines[2] != lines[0] {
		t.Errorf("Header() rules = %q, %q", lines[0], lines[2])
	}
	if lines[1] != "  Workspace" {
		t.Errorf("Header() title = %q", lines[1])
	}
}

func TestOutputField(t *testing.T) {
	setNoColor(t, true)

	var buf bytes.Buffer
	NewWithWriter(&buf).Field("Mode", "0755")

	want := "  " + fmt.Sprintf("%-22s", "Mode:") + " 0755\n"
	if got := buf.String(); got != want {
		t.Errorf("Field() = %q, want %q", got, want)
	}
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)

	for _, def := range []bool{true, false} {
		got, err := u.PromptYesNo("Continue?", def)
		if err != nil {
			t.Fatalf("PromptYesNo() error = %v", err)
		}
		if got != def {
			t.Errorf("PromptYesNo() = %v, want default %v", got, def)
		}
	}
}
