package category_test

import (
	"reflect"
	"testing"

	"foc/internal/category"
)

func TestClassifyIgnoresCase(t *testing.T) {
	rules := category.Default()
	tests := []struct {
		ext  string
		want string
	}{
		{"jpg", category.Images},
		{"JPG", category.Images},
		{"Jpg", category.Images},
		{".png", category.Images},
		{"mp4", category.Videos},
		{"MKV", category.Videos},
		{"txt", category.Documents},
		{"PDF", category.Documents},
		{"woff2", category.Fonts},
		{"stl", category.Models3D},
		{"qcow2", category.DiskImages},
		{"epub", category.Ebooks},
	}
	for _, tc := range tests {
		if got := rules.Classify(tc.ext); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestClassifyLastMatchWins(t *testing.T) {
	rules := category.Default()
	tests := []struct {
		ext  string
		want string
	}{
		{"csv", category.Spreadsheets},
		{"xlsx", category.Spreadsheets},
		{"key", category.Certificates},
		{"pptx", category.Presentations},
		{"iso", category.DiskImages},
		{"dmg", category.DiskImages},
		{"ts", category.Code},
		{"sh", category.Code},
		{"sql", category.Databases},
		{"3gp", category.Audios},
	}
	for _, tc := range tests {
		if got := rules.Classify(tc.ext); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestClassifyUnknownIsUncategorized(t *testing.T) {
	rules := category.Default()
	for _, ext := range []string{"unknownext", "", ".", "   "} {
		if got := rules.Classify(ext); got != category.Uncategorized {
			t.Errorf("Classify(%q) = %q, want uncategorized", ext, got)
		}
	}
}

func TestNewKeepsDeclarationOrder(t *testing.T) {
	rules := category.New([]category.Rule{
		{Name: "First", Extensions: []string{"a", "B"}},
		{Name: "Second", Extensions: []string{".b", "c"}},
		{Name: "First", Extensions: []string{"z"}},
		{Name: "", Extensions: []string{"y"}},
	})

	if got, want := rules.Names(), []string{"First", "Second"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if got := rules.Classify("b"); got != "Second" {
		t.Fatalf("Classify(b) = %q, want Second", got)
	}
	if got := rules.Classify("z"); got != category.Uncategorized {
		t.Fatalf("duplicate rule should be dropped, Classify(z) = %q", got)
	}
	if got := rules.Classify("y"); got != category.Uncategorized {
		t.Fatalf("unnamed rule should be dropped, Classify(y) = %q", got)
	}
}

func TestConflictsReportWinner(t *testing.T) {
	conflicts := category.Default().Conflicts()
	found := map[string]category.Conflict{}
	for _, c := range conflicts {
		found[c.Extension] = c
	}

	key, ok := found["key"]
	if !ok {
		t.Fatal("expected key to be reported as a conflict")
	}
	want := []string{category.Documents, category.Presentations, category.Certificates}
	if !reflect.DeepEqual(key.Categories, want) {
		t.Fatalf("key categories = %v, want %v", key.Categories, want)
	}
	if key.Winner != category.Certificates {
		t.Fatalf("key winner = %q", key.Winner)
	}
	if _, ok := found["jpg"]; ok {
		t.Fatal("jpg is only claimed by Images")
	}
	for i := 1; i < len(conflicts); i++ {
		if conflicts[i-1].Extension > conflicts[i].Extension {
			t.Fatalf("conflicts not sorted: %q before %q", conflicts[i-1].Extension, conflicts[i].Extension)
		}
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := category.Default()
	copied := rules.Rules()
	copied[0].Extensions[0] = "mutated"
	if rules.Classify("jpg") != category.Images {
		t.Fatal("mutating Rules() result must not affect the set")
	}
}
