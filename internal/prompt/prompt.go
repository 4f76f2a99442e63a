package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Asker reads line-based answers from In, writing questions to Out. It is
// injected into the orchestrator so scaffolding stays testable without a
// real terminal.
type Asker struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints the question and reads one line, returning it with surrounding
// whitespace trimmed. EOF before a newline is not an error: whatever was
// read (possibly nothing) is returned, so piped input works.
func (a *Asker) Ask(question string) (string, error) {
	fmt.Fprintf(a.Out, "%s: ", question)

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ResolveName returns the project name to use: the trimmed answer, or the
// destination directory's base name when the answer is empty or whitespace.
// The fallback guarantees a non-empty name.
func ResolveName(answer, dir string) string {
	name := strings.TrimSpace(answer)
	if name == "" {
		return filepath.Base(dir)
	}
	return name
}
