package gitignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Selector runs the interactive template selection loop.
//
// Input is read line by line from In; prompts and listings are written to
// Out. The loop only terminates on a valid selection (or when In is
// exhausted, which surfaces as an error). In is a shared *bufio.Reader so
// later prompts on the same input source do not lose buffered lines.
type Selector struct {
	In      *bufio.Reader
	Out     io.Writer
	Catalog []string
}

// NewSelector creates a selector over the given catalog.
func NewSelector(in *bufio.Reader, out io.Writer, catalog []string) *Selector {
	return &Selector{In: in, Out: out, Catalog: catalog}
}

// Run prompts until a terminal choice is made and returns the selected
// catalog entry in its original casing, or NoTemplate.
//
// Sentinels (case-insensitive): "none" selects the empty template, "list"
// prints the catalog and re-prompts. Anything else is matched exactly
// against the catalog first, then as a substring to produce suggestions.
func (s *Selector) Run() (string, error) {
	for {
		fmt.Fprint(s.Out, "Choose a .gitignore template (or 'list', or 'none'): ")

		line, err := s.In.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("input closed before a template was selected")
			}
			return "", fmt.Errorf("failed to read selection: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "none":
			return NoTemplate, nil
		case "list":
			fmt.Fprintln(s.Out, FormatCatalog(s.Catalog))
			continue
		}

		if match, ok := Match(s.Catalog, input); ok {
			return match, nil
		}

		suggestions := suggest(s.Catalog, input)
		if len(suggestions) > 0 {
			fmt.Fprintf(s.Out, "No exact match for %q. Did you mean:\n", input)
			for _, name := range suggestions {
				fmt.Fprintf(s.Out, "  %s\n", name)
			}
			continue
		}

		fmt.Fprintf(s.Out, "Template %q not found. Type 'list' to see all templates.\n", input)
	}
}

// Match finds the catalog entry equal to input ignoring case.
// The returned value preserves the catalog's casing so that the content
// download URL is correctly cased.
func Match(catalog []string, input string) (string, bool) {
	for _, name := range catalog {
		if strings.EqualFold(name, input) {
			return name, true
		}
	}
	return "", false
}

// suggest returns catalog entries containing input, ignoring case.
func suggest(catalog []string, input string) []string {
	lower := strings.ToLower(input)
	var matches []string
	for _, name := range catalog {
		if strings.Contains(strings.ToLower(name), lower) {
			matches = append(matches, name)
		}
	}
	return matches
}

// FormatCatalog renders the catalog in rows of three columns, each entry
// right-padded to a fixed width.
func FormatCatalog(catalog []string) string {
	const columns = 3
	const width = 25

	var b strings.Builder
	for i := 0; i < len(catalog); i += columns {
		end := i + columns
		if end > len(catalog) {
			end = len(catalog)
		}

		cells := make([]string, 0, columns)
		for _, name := range catalog[i:end] {
			cells = append(cells, fmt.Sprintf("%-*s", width, name))
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + strings.Join(cells, " - "))
	}
	return b.String()
}
