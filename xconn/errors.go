package xconn

import "fmt"

// coreErrorNames maps core protocol error codes to their names.
var coreErrorNames = map[byte]string{
	1:  "BadRequest",
	2:  "BadValue",
	3:  "BadWindow",
	4:  "BadPixmap",
	5:  "BadAtom",
	6:  "BadCursor",
	7:  "BadFont",
	8:  "BadMatch",
	9:  "BadDrawable",
	10: "BadAccess",
	11: "BadAlloc",
	12: "BadColor",
	13: "BadGC",
	14: "BadIDChoice",
	15: "BadName",
	16: "BadLength",
	17: "BadImplementation",
}

// renderErrorNames is indexed by offset from the Render extension's
// first error code.
var renderErrorNames = []string{
	"BadPictFormat",
	"BadPicture",
	"BadPictOp",
	"BadGlyphSet",
	"BadGlyph",
}

// syncErrorNames is indexed by offset from the Sync extension's first
// error code.
var syncErrorNames = []string{
	"XSyncBadCounter",
	"XSyncBadAlarm",
	"XSyncBadFence",
}

// ErrorName resolves an X protocol error code to a readable name,
// accounting for the first-error offsets of the Render and Sync
// extensions.
func (c *Connection) ErrorName(code byte) string {
	if c.renderFirstError != 0 && code >= c.renderFirstError {
		if off := int(code) - int(c.renderFirstError); off < len(renderErrorNames) {
			return renderErrorNames[off]
		}
	}
	if c.syncFirstError != 0 && code >= c.syncFirstError {
		if off := int(code) - int(c.syncFirstError); off < len(syncErrorNames) {
			return syncErrorNames[off]
		}
	}
	if name, ok := coreErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", code)
}
