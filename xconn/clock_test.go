package xconn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowMicrosecondsMonotonic(t *testing.T) {
	c := &Connection{}
	a := c.NowMicroseconds()
	time.Sleep(2 * time.Millisecond)
	b := c.NowMicroseconds()

	assert.Greater(t, b, a)
	assert.Less(t, b-a, uint64(time.Second.Microseconds()))
}
