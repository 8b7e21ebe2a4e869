package output

import (
	"strings"
	"testing"
)

func TestComma(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tc := range tests {
		got := Comma(tc.input)
		if got != tc.want {
			t.Errorf("Comma(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestProgressBarBounds(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name     string
		fraction float64
		filled   int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 5},
		{"full", 1, 10},
		{"clamped high", 1.7, 10},
		{"clamped low", -0.2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressBar(tc.fraction, 10)
			if n := strings.Count(got, "█"); n != tc.filled {
				t.Errorf("ProgressBar(%v) filled = %d, want %d", tc.fraction, n, tc.filled)
			}
		})
	}
}

func TestTableAlignment(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Stat", "Value").AlignRight(1)
	tbl.AddRow("prompts", "42")
	tbl.AddRow("sessions", "7")

	out := tbl.Render()
	if !strings.Contains(out, "prompts ") {
		t.Errorf("left column not left-aligned:\n%s", out)
	}
	if !strings.Contains(out, "   42") && !strings.Contains(out, " 42") {
		t.Errorf("right column not right-aligned:\n%s", out)
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 4 {
		t.Errorf("expected header, rule, and two rows:\n%s", out)
	}
}
