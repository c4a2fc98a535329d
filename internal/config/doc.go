// Package config loads the alarm settings file and validates it into domain
// types.
//
// The file is Hjson (relaxed JSON: # and // comments, quoteless strings,
// optional commas and root braces). Contents Hjson rejects are retried as
// YAML.
package config
