// Package config loads, normalizes, and validates foc configuration data.
//
// A run works without any file: Default supplies every value. When a path is
// given, Load reads TOML (or YAML for .yaml/.yml files) over the defaults,
// expands user paths including tilde shortcuts, canonicalizes enumerations and
// returns clear validation errors. The category table itself is fixed and is
// not part of the configuration.
package config
