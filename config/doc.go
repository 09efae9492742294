// Package config loads core.Params from a YAML file, the one file-based
// configuration surface this module exposes; programmatic construction of
// core.Params remains the primary path and is what the library itself uses.
package config
