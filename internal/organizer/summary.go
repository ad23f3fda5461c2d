package organizer

import (
	"sort"

	"foc/internal/scanner"
)

// Status is the result of processing one file.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusMoved   Status = "moved"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one scanned file.
type Outcome struct {
	Entry       scanner.FileEntry
	Category    string
	Destination string
	Status      Status
	Err         error
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Root       string
	DryRun     bool
	Total      int
	Planned    int
	Moved      int
	Skipped    int
	Failed     int
	BytesMoved int64
	Outcomes   []Outcome

	byCategory map[string]int
}

func newSummary(root string, dryRun bool) *Summary {
	return &Summary{Root: root, DryRun: dryRun, byCategory: make(map[string]int)}
}

func (s *Summary) record(o Outcome) {
	s.Total++
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusPlanned:
		s.Planned++
		s.byCategory[o.Category]++
	case StatusMoved:
		s.Moved++
		s.BytesMoved += o.Entry.Size
		s.byCategory[o.Category]++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// CategoryCount pairs a category with the files planned or moved into it.
type CategoryCount struct {
	Category string
	Files    int
}

// Categories lists per-category counts sorted by category name.
func (s *Summary) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(s.byCategory))
	for name, n := range s.byCategory {
		out = append(out, CategoryCount{Category: name, Files: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Failures returns the failed outcomes in processing order.
func (s *Summary) Failures() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}
