// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to path via a pending temp file in the same
// directory, fsyncs it, and renames it into place. The destination is either
// untouched or holds the complete new content; a failed write never leaves a
// partial file behind.
func WriteFileAtomic(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file for %q: %w", path, err)
	}
	defer pending.Cleanup() //nolint:errcheck // no-op after a successful replace

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write pending file for %q: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %q: %w", path, err)
	}
	return nil
}
