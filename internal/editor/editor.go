package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the editor command line: TASKEASY_EDITOR, then EDITOR,
// then VISUAL, falling back to vi. Values may carry arguments ("code -w").
func Command() []string {
	for _, env := range []string{"TASKEASY_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

func Open(path string) error {
	argv := Command()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", argv[0], err)
	}
	return nil
}

// EditTemp writes content to a temporary file named after pattern, opens it
// in the editor and returns what was saved.
func EditTemp(pattern string, content []byte) ([]byte, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := Open(path); err != nil {
		return nil, err
	}
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading edited file: %w", err)
	}
	return out, nil
}
