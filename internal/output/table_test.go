package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
		{"████░░", 6},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Component", "Score")
	tbl.AddRow("Blood Pressure", "100")
	tbl.AddRow("Steps", "85")

	output := tbl.Render()

	for _, want := range []string{"Component", "Score", "Blood Pressure", "Steps", "─"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if output := tbl.Render(); output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_StyledCellWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	// A cell carrying ANSI escapes must not inflate its column width.
	tbl := NewTable("Status", "Note")
	tbl.AddRow("\x1b[32mgood\x1b[0m", "x")
	tbl.AddRow("fair", "y")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	// Both data rows align the second column at the same offset.
	styled := strings.Index(ansiPattern.ReplaceAllString(lines[2], ""), "x")
	plain := strings.Index(lines[3], "y")
	if styled != plain {
		t.Errorf("columns misaligned: styled row offset %d, plain row offset %d", styled, plain)
	}
}

func TestTable_AlignRight(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Name", "Score").AlignRight(1)
	tbl.AddRow("Steps", "100")
	tbl.AddRow("Weight", "85")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// "85" right-aligns under "100": padded to " 85".
	if !strings.HasSuffix(lines[3], " 85") {
		t.Errorf("expected right-aligned score, got %q", lines[3])
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	SetNoColor(false)
}
