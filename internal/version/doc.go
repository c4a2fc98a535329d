// Package version exposes build metadata for the project.
//
// Version, Commit and BuildTime are injected at build time via Go ldflags.
// When Commit is not injected, the VCS revision recorded by the Go toolchain
// is used instead.
package version
