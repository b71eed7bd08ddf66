//go:build !linux && !freebsd && !netbsd && !openbsd

package xconn

import "time"

var clockOrigin = time.Now()

// NowMicroseconds reads the Go runtime's monotonic clock, with the
// process start as the epoch. This is not the server's UST clock
// domain. Platforms with Present support are covered by clock_unix.go;
// this fallback only keeps the package building elsewhere.
func (c *Connection) NowMicroseconds() uint64 {
	return uint64(time.Since(clockOrigin).Microseconds())
}
