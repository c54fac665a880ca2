//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package civil

func setSystemTime(Timestamp) error {
	return ErrClockUnsupported
}
