// Package clock abstracts wall-clock reads and context-aware sleeps so the
// alarm loop and the fade runner can be driven by a fake time source in tests.
package clock
