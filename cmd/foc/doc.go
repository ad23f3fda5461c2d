// Package main hosts the foc CLI entrypoint and command graph.
//
// The root command organizes a directory: it resolves the target path, loads
// optional configuration, builds the structured logger, and hands off to the
// organizer, rendering each per-file outcome and a closing summary on stdout.
// Subcommands list the category table, run preflight checks, and scaffold or
// validate configuration files. Keep behaviour in the internal packages; this
// package only wires and renders.
package main
