package gitignore

import (
	"bufio"
	"strings"
	"testing"
)

var testCatalog = []string{"C++", "Go", "Java", "JavaScript", "Python", "Rust"}

func runSelector(t *testing.T, input string) (string, string, error) {
	t.Helper()
	var out strings.Builder
	sel := NewSelector(bufio.NewReader(strings.NewReader(input)), &out, testCatalog)
	choice, err := sel.Run()
	return choice, out.String(), err
}

func TestSelector_NoneSentinel(t *testing.T) {
	for _, input := range []string{"none", "None", "NONE", "nOnE"} {
		t.Run(input, func(t *testing.T) {
			choice, _, err := runSelector(t, input+"\n")
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if choice != NoTemplate {
				t.Errorf("got %q, want %q", choice, NoTemplate)
			}
		})
	}
}

func TestSelector_ExactMatchPreservesCasing(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Python", "Python"},
		{"python", "Python"},
		{"PYTHON", "Python"},
		{"javascript", "JavaScript"},
		{"c++", "C++"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			choice, _, err := runSelector(t, tt.input+"\n")
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if choice != tt.want {
				t.Errorf("got %q, want %q", choice, tt.want)
			}
		})
	}
}

func TestSelector_EmptyInputReprompts(t *testing.T) {
	choice, out, err := runSelector(t, "\n\nGo\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if choice != "Go" {
		t.Errorf("got %q, want Go", choice)
	}
	if n := strings.Count(out, "Choose a .gitignore template"); n != 3 {
		t.Errorf("expected 3 prompts, got %d", n)
	}
}

func TestSelector_ListCommand(t *testing.T) {
	choice, out, err := runSelector(t, "list\nGo\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if choice != "Go" {
		t.Errorf("got %q, want Go", choice)
	}
	if !strings.Contains(out, "- ") || !strings.Contains(out, "Python") {
		t.Errorf("list output missing catalog rendering:\n%s", out)
	}
}

func TestSelector_SubstringSuggestions(t *testing.T) {
	choice, out, err := runSelector(t, "java\nJavaScript\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// "java" matches Java exactly (case-insensitive), so it is terminal.
	if choice != "Java" {
		t.Fatalf("got %q, want Java", choice)
	}

	choice, out, err = runSelector(t, "script\nJavaScript\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if choice != "JavaScript" {
		t.Errorf("got %q, want JavaScript", choice)
	}
	if !strings.Contains(out, "Did you mean") || !strings.Contains(out, "JavaScript") {
		t.Errorf("expected suggestions for 'script', got:\n%s", out)
	}
}

func TestSelector_NotFoundMessage(t *testing.T) {
	_, out, err := runSelector(t, "zzz\nGo\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "not found") || !strings.Contains(out, "list") {
		t.Errorf("expected not-found message directing to 'list', got:\n%s", out)
	}
}

func TestSelector_NeverTerminatesWithoutMatch(t *testing.T) {
	// Every line misses the catalog; the loop re-prompts for each and only
	// stops because the input is exhausted.
	input := strings.Repeat("zzz\n", 10)
	var out strings.Builder
	sel := NewSelector(bufio.NewReader(strings.NewReader(input)), &out, testCatalog)

	if _, err := sel.Run(); err == nil {
		t.Fatal("expected error when input is exhausted, got nil")
	}
	if n := strings.Count(out.String(), "Choose a .gitignore template"); n != 11 {
		t.Errorf("expected 11 prompts (10 misses + final), got %d", n)
	}
}

func TestFormatCatalog(t *testing.T) {
	got := FormatCatalog([]string{"A", "B", "C", "D"})
	lines := strings.Split(got, "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), got)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "- ") {
			t.Errorf("row missing prefix: %q", line)
		}
	}
	if !strings.Contains(lines[0], " - ") {
		t.Errorf("columns not joined with ' - ': %q", lines[0])
	}
	// Each full row: "- " + three cells of width 25 + two " - " separators.
	if wantLen := 2 + 3*25 + 2*3; len(lines[0]) != wantLen {
		t.Errorf("row width = %d, want %d: %q", len(lines[0]), wantLen, lines[0])
	}
}
