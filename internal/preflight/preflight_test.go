package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foc/internal/category"
	"foc/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckLockDir_Missing(t *testing.T) {
	result := CheckLockDir(filepath.Join(t.TempDir(), "a", "b"))
	if !result.Passed {
		t.Fatalf("missing lock dir under writable parent should pass: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "created on first run") {
		t.Fatalf("detail = %q", result.Detail)
	}
}

func TestCheckCategoryFolders_Blocked(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Images"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "Videos"), 0o755); err != nil {
		t.Fatal(err)
	}

	result := CheckCategoryFolders(root, []string{"Images", "Videos", "Audios"})
	if result.Passed {
		t.Fatal("expected failure when a file occupies a folder name")
	}
	if !strings.Contains(result.Detail, "Images") || strings.Contains(result.Detail, "Videos") {
		t.Fatalf("detail = %q", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Organize.LockDir = filepath.Join(t.TempDir(), "locks")
	cfg.Organize.Uncategorized = config.UncategorizedFolder
	if err := os.WriteFile(filepath.Join(root, cfg.Organize.UncategorizedDir), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := RunAll(&cfg, root, category.Default())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if Failed(results) != 1 || results[2].Passed {
		t.Fatalf("expected only the folder check to fail: %+v", results)
	}

	if RunAll(nil, root, nil) != nil {
		t.Fatal("nil config should yield no results")
	}
}

func TestCheckCategoryFolders_Symlinks(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	if err := os.Symlink(target, filepath.Join(root, "Images")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if result := CheckCategoryFolders(root, []string{"Images"}); !result.Passed {
		t.Fatalf("symlink to a directory should pass: %s", result.Detail)
	}

	if err := os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "Videos")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	result := CheckCategoryFolders(root, []string{"Images", "Videos"})
	if result.Passed || !strings.Contains(result.Detail, "Videos") || strings.Contains(result.Detail, "Images") {
		t.Fatalf("expected only the dangling link to block, got %+v", result)
	}
}
