package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"foc/internal/organizer"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// consoleReporter prints one line per processed file and the closing summary.
type consoleReporter struct {
	out      io.Writer
	colorize bool
}

func newConsoleReporter(out io.Writer, colorize bool) *consoleReporter {
	return &consoleReporter{out: out, colorize: colorize}
}

func (r *consoleReporter) ScanStarted(root string) {
	fmt.Fprintf(r.out, "Scanning directory: %s\n", root)
}

func (r *consoleReporter) FileProcessed(o organizer.Outcome) {
	fmt.Fprintln(r.out, r.paint(outcomeKind(o.Status), outcomeLine(o)))
}

func (r *consoleReporter) Summary(s *organizer.Summary) {
	if s.Total == 0 {
		fmt.Fprintln(r.out, "No files to organize")
		return
	}

	rows := make([][]string, 0, len(s.Categories())+1)
	for _, c := range s.Categories() {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Files)})
	}
	if len(rows) > 0 {
		header := "Moved"
		if s.DryRun {
			header = "Would move"
		}
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, renderTable([]string{"Category", header}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	fmt.Fprintln(r.out, r.paint(summaryKind(s), summaryLine(s)))
}

func (r *consoleReporter) paint(kind statusKind, line string) string {
	if !r.colorize {
		return line
	}
	if color := statusKindColor(kind); color != "" {
		return color + line + ansiReset
	}
	return line
}

func outcomeLine(o organizer.Outcome) string {
	switch o.Status {
	case organizer.StatusPlanned:
		return fmt.Sprintf("Would move %s to %s", o.Entry.Name, o.Category)
	case organizer.StatusMoved:
		return fmt.Sprintf("Moved %s to %s", o.Entry.Name, o.Category)
	case organizer.StatusFailed:
		return fmt.Sprintf("Failed to move %s: %v", o.Entry.Name, o.Err)
	default:
		return fmt.Sprintf("Skipped %s (uncategorized)", o.Entry.Name)
	}
}

func outcomeKind(status organizer.Status) statusKind {
	switch status {
	case organizer.StatusMoved:
		return statusOK
	case organizer.StatusPlanned:
		return statusWarn
	case organizer.StatusFailed:
		return statusError
	default:
		return statusInfo
	}
}

func summaryLine(s *organizer.Summary) string {
	parts := make([]string, 0, 3)
	if s.DryRun {
		parts = append(parts, fmt.Sprintf("%d would move", s.Planned))
	} else {
		parts = append(parts, fmt.Sprintf("%d moved", s.Moved))
	}
	parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	line := fmt.Sprintf("%d files: %s", s.Total, strings.Join(parts, ", "))
	if s.DryRun {
		line += " (dry run, nothing was moved)"
	}
	return line
}

func summaryKind(s *organizer.Summary) statusKind {
	switch {
	case s.Failed > 0:
		return statusError
	case s.DryRun:
		return statusWarn
	default:
		return statusOK
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
