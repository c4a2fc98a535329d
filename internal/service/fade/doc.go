// Package fade drives the sunrise ramp: brightness climbs linearly from 0 to 1
// over the fade-in duration, stays at full brightness for the hold duration,
// then drops to 0.
package fade
