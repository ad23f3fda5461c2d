// Package preflight provides readiness checks for a directory that is about
// to be organized.
//
// The CLI "foc check" command runs them and prints one status line per
// check. A failing check does not stop an organize run; it explains in
// advance which moves are going to fail.
package preflight
