//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package civil

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func setSystemTime(ts Timestamp) error {
	tv := unix.NsecToTimeval(int64(ts) * int64(time.Second))
	if err := unix.Settimeofday(&tv); err != nil {
		return fmt.Errorf("settimeofday: %w", err)
	}
	return nil
}
