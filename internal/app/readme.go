package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readmeSentinel ends interactive README collection. The sentinel line
// itself is never part of the body.
const readmeSentinel = "END"

// CollectReadmeLines reads README body lines from in until the sentinel or
// end of input. Prompting text goes to out. The reader is shared with the
// template selector, so input buffered during selection is not lost.
func CollectReadmeLines(in *bufio.Reader, out io.Writer) ([]string, error) {
	fmt.Fprintf(out, "Enter README content line by line (finish with %s):\n", readmeSentinel)

	var lines []string
	for {
		line, err := in.ReadString('\n')
		text := strings.TrimRight(line, "\r\n")

		if line != "" {
			// Only a line that is exactly the sentinel terminates; padded
			// variants like "  END  " are ordinary content.
			if text == readmeSentinel {
				break
			}
			lines = append(lines, text)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read README content: %w", err)
		}
	}
	return lines, nil
}

// BuildReadme composes the README body: a heading for the repository name,
// and the collected lines after a blank separator when any were given.
func BuildReadme(repoName string, lines []string) string {
	heading := "# " + repoName
	if len(lines) == 0 {
		return heading
	}
	return heading + "\n\n" + strings.Join(lines, "\n")
}
