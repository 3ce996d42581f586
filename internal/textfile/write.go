// Package textfile writes text artifacts with normalized line endings.
//
// Files produced by repoinit (.gitignore, README.md) are written with
// CRLF line endings and never carry a UTF-8 byte-order mark, regardless
// of what the source content used.
package textfile

import (
	"bytes"
	"fmt"
	"os"
)

// utf8BOM is the UTF-8 byte-order mark some Windows editors prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NormalizeCRLF converts every line ending in s to CRLF.
// Existing CRLF sequences are preserved, bare LF becomes CRLF.
func NormalizeCRLF(s string) string {
	// Collapse to LF first so CRLF input is not doubled to CRCRLF.
	b := bytes.ReplaceAll([]byte(s), []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\n"), []byte("\r\n"))
	return string(b)
}

// Write writes content to path with CRLF line endings and no BOM.
func Write(path string, content string) error {
	data := []byte(NormalizeCRLF(content))
	data = bytes.TrimPrefix(data, utf8BOM)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
