package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/songbook/songbook/internal/config"
	"github.com/songbook/songbook/internal/store"
)

// runCLI executes the root command against the songs file configured via
// the environment and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testSongsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	t.Setenv(config.EnvSongsFile, path)
	return path
}

func TestList_Empty(t *testing.T) {
	testSongsFile(t)

	out, err := runCLI(t, "--list")
	if err != nil {
		t.Fatalf("--list failed: %v", err)
	}
	if !strings.Contains(out, "No songs yet.") {
		t.Errorf("--list output = %q, expected empty-list message", out)
	}
}

func TestAddThenList(t *testing.T) {
	path := testSongsFile(t)

	out, err := runCLI(t, "--add", "Amazing Grace", "1")
	if err != nil {
		t.Fatalf("--add failed: %v", err)
	}
	if !strings.Contains(out, "Added: Amazing Grace — 1") {
		t.Errorf("--add output = %q, expected confirmation", out)
	}

	out, err = runCLI(t, "--list")
	if err != nil {
		t.Fatalf("--list failed: %v", err)
	}
	for _, want := range []string{"Amazing Grace", "0"} {
		if !strings.Contains(out, want) {
			t.Errorf("--list output missing %q:\n%s", want, out)
		}
	}

	// The add persisted to the configured file
	st := store.New(path)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	if st.Len() != 1 {
		t.Errorf("songs file has %d songs, expected 1", st.Len())
	}
}

func TestAdd_WithoutTitle(t *testing.T) {
	testSongsFile(t)

	if _, err := runCLI(t, "--add"); err == nil {
		t.Error("--add with no arguments should fail")
	}
	if _, err := runCLI(t, "--add", "   "); !errors.Is(err, store.ErrTitleRequired) {
		t.Errorf("--add with blank title: error = %v, expected ErrTitleRequired", err)
	}
}

func TestRemove(t *testing.T) {
	path := testSongsFile(t)
	if _, err := runCLI(t, "--add", "Amazing Grace", "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "--add", "How Great Thou Art", "2"); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--remove", "0")
	if err != nil {
		t.Fatalf("--remove failed: %v", err)
	}
	if !strings.Contains(out, "Removed: Amazing Grace — 1") {
		t.Errorf("--remove output = %q, expected confirmation", out)
	}

	st := store.New(path)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	songs := st.List()
	if len(songs) != 1 || songs[0].Title != "How Great Thou Art" {
		t.Errorf("songs after remove = %v, expected only 'How Great Thou Art'", songs)
	}
}

func TestRemove_BadIndex(t *testing.T) {
	path := testSongsFile(t)
	if _, err := runCLI(t, "--add", "Amazing Grace", "1"); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "--remove", "5"); !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Errorf("--remove 5: error = %v, expected ErrIndexOutOfRange", err)
	}
	if _, err := runCLI(t, "--remove", "one"); err == nil {
		t.Error("--remove with a non-integer index should fail")
	}

	// File untouched by the failed removes
	st := store.New(path)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	if st.Len() != 1 {
		t.Errorf("songs file has %d songs after failed removes, expected 1", st.Len())
	}
}

func TestConflictingOperations(t *testing.T) {
	testSongsFile(t)

	if _, err := runCLI(t, "--list", "--remove", "0"); err == nil {
		t.Error("combining --list and --remove should fail")
	}
}

func TestNoOperationShowsHelp(t *testing.T) {
	testSongsFile(t)

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("bare invocation failed: %v", err)
	}
	if !strings.Contains(out, "--list") {
		t.Errorf("help output missing flag docs:\n%s", out)
	}
}
