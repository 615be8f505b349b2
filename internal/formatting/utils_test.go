package formatting

import (
	"strings"
	"testing"
)

func TestColorizeStatus(t *testing.T) {
	if got := ColorizeStatus("pass", false); got != "pass" {
		t.Errorf("ColorizeStatus without color = %q, want %q", got, "pass")
	}

	colored := ColorizeStatus("fail", true)
	if !strings.Contains(colored, "fail") {
		t.Errorf("ColorizeStatus(fail) = %q, want it to contain the status", colored)
	}

	if got := ColorizeStatus("unknown", true); got != "unknown" {
		t.Errorf("ColorizeStatus(unknown) = %q, want it unchanged", got)
	}
}

func TestJoinOrDash(t *testing.T) {
	if got := JoinOrDash(nil); got != "-" {
		t.Errorf("JoinOrDash(nil) = %q, want -", got)
	}
	if got := JoinOrDash([]string{"a", "b"}); got != "a, b" {
		t.Errorf("JoinOrDash = %q, want %q", got, "a, b")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"tiny", 2, "tiny"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestIndentText(t *testing.T) {
	if got := IndentText("", "  "); got != "" {
		t.Errorf("IndentText(empty) = %q", got)
	}
	if got := IndentText("a\nb\n", "  "); got != "  a\n  b" {
		t.Errorf("IndentText = %q, want %q", got, "  a\n  b")
	}
}
