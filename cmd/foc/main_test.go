package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foc/internal/organizer"
	"foc/internal/scanner"
	"foc/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in output:\n%s", needle, haystack)
	}
}

// writeLockDirConfig keeps run locks inside the test's temp space.
func writeLockDirConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "foc.toml")
	body := "[organize]\nlock_dir = \"" + filepath.ToSlash(filepath.Join(dir, "locks")) + "\"\n" + extra
	testsupport.WriteContent(t, path, []byte(body))
	return path
}

func seedRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testsupport.WriteContent(t, filepath.Join(root, "a.png"), []byte("png"))
	testsupport.WriteContent(t, filepath.Join(root, "b.mp4"), []byte("mp4"))
	testsupport.WriteContent(t, filepath.Join(root, "c.txt"), []byte("txt"))
	testsupport.WriteContent(t, filepath.Join(root, "d.unknownext"), []byte("?"))
	return root
}

func TestOrganizeMovesFiles(t *testing.T) {
	root := seedRoot(t)
	cfgPath := writeLockDirConfig(t, "")

	out, _, err := runCLI(t, "--config", cfgPath, "-p", root)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Scanning directory: "+root)
	requireContains(t, out, "Moved a.png to Images")
	requireContains(t, out, "Moved b.mp4 to Videos")
	requireContains(t, out, "Moved c.txt to Documents")
	requireContains(t, out, "Skipped d.unknownext (uncategorized)")
	requireContains(t, out, "4 files: 3 moved, 1 skipped, 0 failed")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("output to a buffer must not be colorized: %q", out)
	}

	testsupport.AssertFile(t, filepath.Join(root, "Images", "a.png"), "png")
	testsupport.AssertFile(t, filepath.Join(root, "Videos", "b.mp4"), "mp4")
	testsupport.AssertFile(t, filepath.Join(root, "Documents", "c.txt"), "txt")
	testsupport.AssertFile(t, filepath.Join(root, "d.unknownext"), "?")
}

func TestOrganizeDryRun(t *testing.T) {
	root := seedRoot(t)
	before := testsupport.Snapshot(t, root)

	out, _, err := runCLI(t, "--path", root, "--dry-run")
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	requireContains(t, out, "Would move a.png to Images")
	requireContains(t, out, "Would move b.mp4 to Videos")
	requireContains(t, out, "dry run, nothing was moved")

	after := testsupport.Snapshot(t, root)
	if len(before) != len(after) {
		t.Fatalf("dry run changed the tree: %v -> %v", before, after)
	}
	for path, body := range before {
		if after[path] != body {
			t.Fatalf("dry run changed %s", path)
		}
	}
}

func TestOrganizeUncategorizedFolderFromConfig(t *testing.T) {
	root := seedRoot(t)
	cfgPath := writeLockDirConfig(t, "uncategorized = \"folder\"\nuncategorized_dir = \"Other\"\n")

	out, _, err := runCLI(t, "-c", cfgPath, "-p", root)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Moved d.unknownext to Other")
	testsupport.AssertFile(t, filepath.Join(root, "Other", "d.unknownext"), "?")
}

func TestOrganizeMissingRootFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out, _, err := runCLI(t, "-p", missing, "--dry-run")
	if !errors.Is(err, scanner.ErrDirectoryUnreadable) {
		t.Fatalf("expected ErrDirectoryUnreadable, got %v", err)
	}
	requireContains(t, out, "Scanning directory: "+missing)
	if strings.Contains(out, "files:") {
		t.Fatalf("summary should not print for an unreadable root: %q", out)
	}
}

func TestOrganizeReportsFailuresAndContinues(t *testing.T) {
	root := seedRoot(t)
	testsupport.WriteContent(t, filepath.Join(root, "Images"), []byte("blocker"))
	cfgPath := writeLockDirConfig(t, "")

	out, stderr, err := runCLI(t, "-c", cfgPath, "-p", root)
	if err != nil {
		t.Fatalf("per-file failures must not fail the run: %v", err)
	}
	requireContains(t, out, "Failed to move a.png: ")
	requireContains(t, out, "Moved b.mp4 to Videos")
	requireContains(t, out, "1 failed")
	requireContains(t, stderr, "event_type=move_failed")
}

func TestOrganizeRejectsInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	testsupport.WriteContent(t, cfgPath, []byte("[organize]\nuncategorized = \"shred\"\n"))

	_, _, err := runCLI(t, "-c", cfgPath, "-p", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "organize.uncategorized") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrganizeEmptyDirectory(t *testing.T) {
	out, _, err := runCLI(t, "-p", t.TempDir(), "--dry-run")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "No files to organize")
}

func TestOrganizeDefaultsToWorkingDirectory(t *testing.T) {
	root := seedRoot(t)
	t.Chdir(root)

	out, _, err := runCLI(t, "--dry-run")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Would move c.txt to Documents")
}

func TestCategoriesCommand(t *testing.T) {
	out, _, err := runCLI(t, "categories", "--conflicts")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	requireContains(t, out, "Disk Images")
	requireContains(t, out, "Certificates")
	requireContains(t, out, "SORTED INTO")
	requireContains(t, out, "key")
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Uncategorized files: left in place")
	requireContains(t, out, "Configuration valid")
}

func TestOutcomeLines(t *testing.T) {
	entry := scanner.FileEntry{Name: "x.jpg"}
	tests := []struct {
		outcome organizer.Outcome
		want    string
		kind    statusKind
	}{
		{organizer.Outcome{Entry: entry, Category: "Images", Status: organizer.StatusPlanned}, "Would move x.jpg to Images", statusWarn},
		{organizer.Outcome{Entry: entry, Category: "Images", Status: organizer.StatusMoved}, "Moved x.jpg to Images", statusOK},
		{organizer.Outcome{Entry: entry, Status: organizer.StatusSkipped}, "Skipped x.jpg (uncategorized)", statusInfo},
		{organizer.Outcome{Entry: entry, Status: organizer.StatusFailed, Err: errors.New("boom")}, "Failed to move x.jpg: boom", statusError},
	}
	for _, tc := range tests {
		if got := outcomeLine(tc.outcome); got != tc.want {
			t.Errorf("outcomeLine = %q, want %q", got, tc.want)
		}
		if got := outcomeKind(tc.outcome.Status); got != tc.kind {
			t.Errorf("outcomeKind(%s) = %v, want %v", tc.outcome.Status, got, tc.kind)
		}
	}
}

func TestReporterColorize(t *testing.T) {
	var buf bytes.Buffer
	r := newConsoleReporter(&buf, true)
	r.FileProcessed(organizer.Outcome{Entry: scanner.FileEntry{Name: "a.png"}, Category: "Images", Status: organizer.StatusMoved})
	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasPrefix(line, ansiGreen) || !strings.HasSuffix(line, ansiReset) {
		t.Fatalf("expected green line, got %q", line)
	}
	if shouldColorize(&buf) {
		t.Fatal("buffers are never terminals")
	}
}

func TestCheckCommand(t *testing.T) {
	root := seedRoot(t)
	cfgPath := writeLockDirConfig(t, "")

	out, _, err := runCLI(t, "-c", cfgPath, "check", "-p", root)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "Directory:")
	requireContains(t, out, "[OK] "+root)
	requireContains(t, out, "created on first run")

	testsupport.WriteContent(t, filepath.Join(root, "Videos"), []byte("blocker"))
	out, _, err = runCLI(t, "-c", cfgPath, "check", "-p", root)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 checks failed") {
		t.Fatalf("expected one failed check, got %v", err)
	}
	requireContains(t, out, "[ERROR] blocked by non-directory entries: Videos")
}

func TestOrganizeWritesLogFile(t *testing.T) {
	root := seedRoot(t)
	logPath := filepath.Join(t.TempDir(), "foc.log")
	cfgPath := writeLockDirConfig(t, "[logging]\nlevel = \"info\"\nfile = \""+filepath.ToSlash(logPath)+"\"\n")

	out, _, err := runCLI(t, "-c", cfgPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Log file: "+logPath)

	_, stderr, err := runCLI(t, "-c", cfgPath, "-p", root)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, stderr, "organize run finished")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(content), "organizer: organize run finished")
	requireContains(t, string(content), "moved=3")
}
