package xconn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextProperty(t *testing.T) {
	assert.Nil(t, splitTextProperty(nil))
	assert.Equal(t, []string{"one"}, splitTextProperty([]byte("one")))
	assert.Equal(t, []string{"one"}, splitTextProperty([]byte("one\x00")))
	assert.Equal(t, []string{"one", "two"}, splitTextProperty([]byte("one\x00two\x00")))
	assert.Equal(t, []string{"one", "", "two"}, splitTextProperty([]byte("one\x00\x00two")))
}

func TestWinPropCard32(t *testing.T) {
	p := WinProp{
		Format:   32,
		NumItems: 2,
		Value:    []byte{0x78, 0x56, 0x34, 0x12, 0x01, 0x00, 0x00, 0x00},
	}
	assert.Equal(t, uint32(0x12345678), p.Card32(0))
	assert.Equal(t, uint32(1), p.Card32(1))
}

func TestWinPropCardinals(t *testing.T) {
	p := WinProp{
		Format:   32,
		NumItems: 2,
		Value:    []byte{0x78, 0x56, 0x34, 0x12, 0x01, 0x00, 0x00, 0x00},
	}
	assert.Equal(t, []uint32{0x12345678, 1}, p.Cardinals())

	// A zero WinProp, as returned for an absent or mistyped
	// property, yields no values.
	assert.Nil(t, WinProp{}.Cardinals())
}
