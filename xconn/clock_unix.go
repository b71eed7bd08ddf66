//go:build linux || freebsd || netbsd || openbsd

package xconn

import "golang.org/x/sys/unix"

// NowMicroseconds reads CLOCK_MONOTONIC in microseconds. Present UST
// values are drawn from the same clock domain on these systems, so the
// two compare directly.
func (c *Connection) NowMicroseconds() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic("xconn: clock_gettime(CLOCK_MONOTONIC): " + err.Error())
	}
	return uint64(ts.Sec)*1_000_000 + uint64(ts.Nsec)/1_000
}
