// SPDX-License-Identifier: MPL-2.0

package pathcheck

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"folder-picker/internal/issue"
)

func TestResolveDir_ExistingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := ResolveDir(dir)
	if err != nil {
		t.Fatalf("ResolveDir(%q) error: %v", dir, err)
	}
	if got != dir {
		t.Errorf("ResolveDir(%q) = %q, want %q", dir, got, dir)
	}
}

func TestResolveDir_RelativeIsMadeAbsolute(t *testing.T) {
	t.Parallel()

	got, err := ResolveDir(".")
	if err != nil {
		t.Fatalf("ResolveDir(.) error: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got != wd {
		t.Errorf("ResolveDir(.) = %q, want %q", got, wd)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ResolveDir(.) = %q is not absolute", got)
	}
}

func TestResolveDir_Missing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := ResolveDir(missing)
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("ResolveDir(missing) error = %v, want ErrNotExist", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
}

func TestResolveDir_File(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ResolveDir(file)
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("ResolveDir(file) error = %v, want ErrNotDirectory", err)
	}
}

func TestResolveDir_Symlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs elevated privileges on Windows")
	}

	base := t.TempDir()
	target := filepath.Join(base, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	dirLink := filepath.Join(base, "dir-link")
	if err := os.Symlink(target, dirLink); err != nil {
		t.Fatal(err)
	}
	fileLink := filepath.Join(base, "file-link")
	if err := os.Symlink(file, fileLink); err != nil {
		t.Fatal(err)
	}

	if got, err := ResolveDir(dirLink); err != nil || got != dirLink {
		t.Errorf("ResolveDir(dir-link) = %q, %v; want %q, nil", got, err, dirLink)
	}
	if _, err := ResolveDir(fileLink); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("ResolveDir(file-link) error = %v, want ErrNotDirectory", err)
	}

	dangling := filepath.Join(base, "dangling")
	if err := os.Symlink(filepath.Join(base, "gone"), dangling); err != nil {
		t.Fatal(err)
	}
	if _, err := ResolveDir(dangling); !errors.Is(err, ErrNotExist) {
		t.Errorf("ResolveDir(dangling) error = %v, want ErrNotExist", err)
	}
}
