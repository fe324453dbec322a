package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// newTestApp creates an app whose library lives in a temp dir.
func newTestApp(t *testing.T, in string) (*App, *bytes.Buffer, string) {
	t.Helper()
	dir := isolate(t)

	var out bytes.Buffer
	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithLogger(&logger),
		WithIO(strings.NewReader(in), &out),
	)
	require.NoError(t, err)

	app.config.File = filepath.Join(dir, "library.json")
	app.config.ExportFile = filepath.Join(dir, "library.csv")
	return app, &out, dir
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

// TestApp_Catalog_Singleton verifies that Catalog() returns the same instance.
func TestApp_Catalog_Singleton(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	c1, err := app.Catalog()
	require.NoError(t, err)
	c2, err := app.Catalog()
	require.NoError(t, err)

	assert.Same(t, c1, c2)
}

// TestApp_WithCatalog verifies a provided catalog is used as is.
func TestApp_WithCatalog(t *testing.T) {
	isolate(t)
	cat, err := catalog.New(catalog.NewMemoryStore())
	require.NoError(t, err)

	app, err := New("dev", "", "", "", WithCatalog(cat))
	require.NoError(t, err)

	got, err := app.Catalog()
	require.NoError(t, err)
	assert.Same(t, cat, got)
}

// TestApp_WithConfig_Invalid verifies invalid configs are rejected.
func TestApp_WithConfig_Invalid(t *testing.T) {
	isolate(t)
	_, err := New("dev", "", "", "", WithConfig(&Config{File: "x.json", PageSize: 0}))
	assert.Error(t, err)
}

func TestExecute_AddListSortExport(t *testing.T) {
	app, out, dir := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Execute(ctx, []string{"add", "--title", "Banana", "--author", "B", "--isbn", "1", "--year", "2001"}))
	require.NoError(t, app.Execute(ctx, []string{"add", "--title", "apple", "--author", "A", "--isbn", "2", "--year", "1999"}))
	require.NoError(t, app.Execute(ctx, []string{"add", "--title", "APPLE", "--author", "a"}))
	assert.Contains(t, out.String(), "Duplicate book. Not added.")

	require.NoError(t, app.Execute(ctx, []string{"sort", "title"}))
	require.NoError(t, app.Execute(ctx, []string{"export"}))

	data, err := os.ReadFile(filepath.Join(dir, "library.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Title,Author,ISBN,Year\r\napple,A,2,1999\r\nBanana,B,1,2001\r\n", string(data))

	library, err := os.ReadFile(filepath.Join(dir, "library.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(library), "[\n    {\n        \"title\": \"apple\""))
}

func TestExecute_UnknownSortKeyFails(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	err := app.Execute(context.Background(), []string{"sort", "pages"})
	assert.Error(t, err)
}

func TestExecute_DryRun(t *testing.T) {
	app, out, dir := newTestApp(t, "")

	require.NoError(t, app.Execute(context.Background(), []string{"--dry-run", "add", "--title", "Ghost"}))
	assert.Contains(t, out.String(), "Book added successfully.")

	_, err := os.Stat(filepath.Join(dir, "library.json"))
	assert.True(t, os.IsNotExist(err), "dry run must not create the library file")
}

func TestExecute_LibraryFlag(t *testing.T) {
	app, _, dir := newTestApp(t, "")
	other := filepath.Join(dir, "other.json")

	require.NoError(t, app.Execute(context.Background(), []string{"--library", other, "add", "--title", "Elsewhere"}))

	_, err := os.Stat(other)
	assert.NoError(t, err)
}

func TestExecute_DefaultsToShell(t *testing.T) {
	app, out, _ := newTestApp(t, "2\n8\n")

	require.NoError(t, app.Execute(context.Background(), []string{}))
	assert.Contains(t, out.String(), "===== Personal Library Catalog =====")
	assert.Contains(t, out.String(), "No books available.")
	assert.Contains(t, out.String(), "Goodbye")
}

func TestExecute_Version(t *testing.T) {
	app, out, _ := newTestApp(t, "")

	require.NoError(t, app.Execute(context.Background(), []string{"version"}))
	assert.Equal(t, "bookshelf 1.0.0\n", out.String())
}

func TestCatalog_DryRunMalformedFile(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	require.NoError(t, os.WriteFile(app.config.File, []byte("{not json"), 0o644))

	tl := logging.NewTestLogger(t)
	app.logger = tl.Logger
	app.config.DryRun = true

	cat, err := app.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
	assert.True(t, tl.Contains("malformed"))
}

func TestSetupCommand_LoggerInContext(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	app, _, dir := newTestApp(t, "")
	logFile := filepath.Join(dir, "bookshelf.log")
	app.config.LogLevel = "debug"
	app.config.LogFormat = "json"
	app.config.LogOutput = logFile

	cmd := &cobra.Command{Use: "add"}
	cmd.SetContext(context.Background())
	require.NoError(t, app.setupCommand(cmd, nil))

	logging.FromContext(cmd.Context()).Debug().Msg("from command context")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"operation":"add"`)
	assert.Contains(t, string(content), "from command context")
}

func TestPrintError_Hints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hint string
	}{
		{"not found", errors.NewNotFoundError("book", "123"), "search isbn"},
		{"validation", errors.NewValidationError("page", 0, "pages are numbered from 1"), "--help"},
		{"other", errors.New("disk full"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)

			assert.True(t, strings.HasPrefix(buf.String(), "Error: "+tt.err.Error()+"\n"))
			if tt.hint == "" {
				assert.NotContains(t, buf.String(), "Hint:")
				return
			}
			assert.Contains(t, buf.String(), tt.hint)
		})
	}
}
