// Package strip is the boundary between the alarm and the addressable LED
// strip. Strip is the capability the rest of the code depends on; the
// hardware driver (build tag ws281x), a log-only simulation and a recording
// fake implement it.
package strip
