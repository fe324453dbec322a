package app

import (
	"os"
	"testing"
)

// isolate points HOME and the working directory at an empty temp dir so no
// real config or .env file leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "NO_COLOR",
		"BOOKSHELF_CONFIG", "BOOKSHELF_FILE", "BOOKSHELF_EXPORT_FILE", "BOOKSHELF_PAGE_SIZE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}
