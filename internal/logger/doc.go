// Package logger provides a small wrapper around zap to offer:
//   - a console encoder matching the rest of the tooling,
//   - an optional size- and count-bounded rotating log file,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Info, InfoKV, ErrorKV, etc.).
//
// The entry point builds one logger and stores it in the context; every
// service extracts it from there, so no process-wide logger is mutated.
package logger
