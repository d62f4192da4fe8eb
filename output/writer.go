package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrWrite wraps every failure to store or remove a ladder file.
var ErrWrite = errors.New("output: write failed")

// WriteFile writes ladder to path, one word per line, replacing any
// existing file. An empty ladder removes path instead; a path that does not
// exist is not an error.
func WriteFile(path string, ladder []string) error {
	if len(ladder) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: remove %q: %v", ErrWrite, path, err)
		}
		return nil
	}

	var b strings.Builder
	for _, w := range ladder {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWrite, path, err)
	}
	return nil
}
