// Package category maps file extensions to the named buckets files are sorted
// into.
//
// The rule table is fixed data: an ordered list of categories, each owning a
// set of lowercase extensions without the leading dot. Several extensions are
// deliberately listed under more than one category (for example "csv" under
// both Documents and Spreadsheets); lookups resolve these by declaration order
// and the last matching rule wins. Callers that need to surface the overlap can
// ask the RuleSet for its Conflicts.
//
// RuleSets are immutable after construction and safe for concurrent reads.
package category
