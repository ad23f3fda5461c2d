package preflight

import (
	"foc/internal/category"
	"foc/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check for organizing root with cfg and rules.
func RunAll(cfg *config.Config, root string, rules *category.RuleSet) []Result {
	if cfg == nil {
		return nil
	}
	if rules == nil {
		rules = category.Default()
	}

	results := []Result{CheckDirectoryAccess("Directory", root)}

	lockDir := cfg.Organize.LockDir
	if lockDir != "" {
		results = append(results, CheckLockDir(lockDir))
	}

	folders := rules.Names()
	if cfg.UncategorizedToFolder() {
		folders = append(folders, cfg.Organize.UncategorizedDir)
	}
	results = append(results, CheckCategoryFolders(root, folders))
	return results
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
