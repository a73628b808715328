package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-audiosplit/internal/media"
)

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrAPIKeyMissing indicates OPENAI_API_KEY environment variable is not set.
	ErrAPIKeyMissing = errors.New("OPENAI_API_KEY environment variable not set")

	// ErrOutputExists indicates the transcript output file already exists.
	ErrOutputExists = errors.New("output file already exists")
)

// ensureInputExists fails fast with media.ErrFileNotFound before any tool runs.
func ensureInputExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", media.ErrFileNotFound, path)
		}
		return fmt.Errorf("cannot access input file: %w", err)
	}
	return nil
}
