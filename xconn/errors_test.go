package xconn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorNameCore(t *testing.T) {
	c := &Connection{}
	assert.Equal(t, "BadRequest", c.ErrorName(1))
	assert.Equal(t, "BadDrawable", c.ErrorName(9))
	assert.Equal(t, "BadImplementation", c.ErrorName(17))
	assert.Equal(t, "Unknown(100)", c.ErrorName(100))
}

func TestErrorNameRenderOffsets(t *testing.T) {
	c := &Connection{renderFirstError: 142}
	assert.Equal(t, "BadPictFormat", c.ErrorName(142))
	assert.Equal(t, "BadGlyph", c.ErrorName(146))
	assert.Equal(t, "Unknown(147)", c.ErrorName(147))

	// Codes below the extension base still resolve as core errors.
	assert.Equal(t, "BadWindow", c.ErrorName(3))
}

func TestErrorNameSyncOffsets(t *testing.T) {
	c := &Connection{syncFirstError: 134}
	assert.Equal(t, "XSyncBadCounter", c.ErrorName(134))
	assert.Equal(t, "XSyncBadAlarm", c.ErrorName(135))
	assert.Equal(t, "XSyncBadFence", c.ErrorName(136))
	assert.Equal(t, "Unknown(137)", c.ErrorName(137))
}

func TestErrorNameRenderBeforeSync(t *testing.T) {
	// Both extensions loaded; each code resolves against its own base.
	c := &Connection{renderFirstError: 142, syncFirstError: 134}
	assert.Equal(t, "XSyncBadFence", c.ErrorName(136))
	assert.Equal(t, "BadPicture", c.ErrorName(143))
}
