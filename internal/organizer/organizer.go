package organizer

import (
	"context"
	"log/slog"
	"path/filepath"

	"foc/internal/category"
	"foc/internal/logging"
	"foc/internal/scanner"
)

// Options configures a run.
type Options struct {
	DryRun bool
	Policy Policy
	Exec   ExecOptions
	// LockDir holds the per-root lock for real runs. Empty disables locking.
	LockDir string
}

// Reporter receives progress as a run advances.
type Reporter interface {
	ScanStarted(root string)
	FileProcessed(o Outcome)
}

// Organizer sorts the top-level files of a directory into category folders.
type Organizer struct {
	rules    *category.RuleSet
	logger   *slog.Logger
	opts     Options
	reporter Reporter
}

// New constructs an Organizer. A nil rules uses the default table; a nil
// reporter discards progress.
func New(rules *category.RuleSet, logger *slog.Logger, reporter Reporter, opts Options) *Organizer {
	if rules == nil {
		rules = category.Default()
	}
	return &Organizer{
		rules:    rules,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		opts:     opts,
		reporter: reporter,
	}
}

// Run scans root and processes each file in name order. Per-file failures are
// recorded and do not stop the batch. An unreadable root, a held lock or a
// cancelled ctx return an error; the summary is returned alongside whatever
// was processed.
func (o *Organizer) Run(ctx context.Context, root string) (*Summary, error) {
	logger := logging.WithContext(ctx, o.logger).With(logging.String(logging.FieldRoot, root))
	summary := newSummary(root, o.opts.DryRun)

	var lockPath string
	if o.opts.LockDir != "" {
		lockPath = LockPath(o.opts.LockDir, root)
	}

	if !o.opts.DryRun && lockPath != "" {
		unlock, err := AcquireLock(o.opts.LockDir, root)
		if err != nil {
			logging.WarnWithContext(logger, "organize run not started; lock unavailable", "lock_unavailable",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "wait for the other run on this directory to finish"),
				logging.String(logging.FieldImpact, "no files were moved"),
			)
			return summary, err
		}
		defer func() {
			if err := unlock(); err != nil {
				logger.Debug("release lock failed", logging.Error(err))
			}
		}()
	}

	o.scanStarted(root)
	entries, err := scanner.Scan(root)
	if err != nil {
		logging.ErrorWithContext(logger, "scan failed", "scan_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the path exists and is readable"),
		)
		return summary, err
	}
	// A lock directory inside root puts the lock file among the entries.
	entries = withoutPath(entries, lockPath)
	logger.Info("scan complete", logging.Int("files", len(entries)), logging.Bool("dry_run", o.opts.DryRun))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			logging.WarnWithContext(logger, "organize run interrupted; directory partially organized", "run_interrupted",
				logging.Int("processed", summary.Total),
				logging.Int("remaining", len(entries)-summary.Total),
				logging.String(logging.FieldImpact, "remaining files were left in place"),
			)
			return summary, err
		}
		outcome := o.process(logger, root, entry)
		summary.record(outcome)
		if o.reporter != nil {
			o.reporter.FileProcessed(outcome)
		}
	}

	logger.Info("organize run finished",
		logging.Int("moved", summary.Moved),
		logging.Int("planned", summary.Planned),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

func withoutPath(entries []scanner.FileEntry, path string) []scanner.FileEntry {
	if path == "" {
		return entries
	}
	path = filepath.Clean(path)
	kept := entries[:0]
	for _, entry := range entries {
		if filepath.Clean(entry.Path) != path {
			kept = append(kept, entry)
		}
	}
	return kept
}

func (o *Organizer) scanStarted(root string) {
	if o.reporter != nil {
		o.reporter.ScanStarted(root)
	}
}

func (o *Organizer) process(logger *slog.Logger, root string, entry scanner.FileEntry) Outcome {
	cat := o.rules.Classify(entry.Ext)
	action, ok := Plan(entry, cat, root, o.opts.Policy)
	if !ok {
		logger.Debug("leaving uncategorized file in place", logging.String(logging.FieldSource, entry.Path))
		return Outcome{Entry: entry, Status: StatusSkipped}
	}

	fileLogger := logger.With(
		logging.String(logging.FieldSource, action.Source),
		logging.String(logging.FieldCategory, action.Category),
	)

	if o.opts.DryRun {
		fileLogger.Debug("planned move", logging.String(logging.FieldDestination, action.Destination))
		return Outcome{Entry: entry, Category: action.Category, Destination: action.Destination, Status: StatusPlanned}
	}

	target, err := Execute(action, o.opts.Exec)
	if err != nil {
		logging.ErrorWithContext(fileLogger, "move failed; continuing with next file", "move_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions and free space in "+filepath.Base(action.Folder)),
		)
		return Outcome{Entry: entry, Category: action.Category, Status: StatusFailed, Err: err}
	}
	fileLogger.Info("moved file", logging.String(logging.FieldDestination, target))
	return Outcome{Entry: entry, Category: action.Category, Destination: target, Status: StatusMoved}
}
