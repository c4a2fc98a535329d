//go:build !ws281x

package strip

// Open reports that this build has no LED driver.
//
//nolint:ireturn,nolintlint // The concrete driver depends on the build tag.
func Open(Options) (Strip, error) {
	return nil, ErrHardwareUnavailable
}
