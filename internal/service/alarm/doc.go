// Package alarm runs the wake-up loop: resolve the next occurrence, wait for
// it, run the sunrise fade, switch the strip off and start over.
package alarm
