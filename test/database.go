package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// DatabaseFile returns the path of a fresh SQLite database file in the
// temporary directory of the test. The file is created on first connect
// and removed together with the directory when the test ends.
func DatabaseFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
