package xconn

import (
	"bytes"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// WinProp holds the value of a window property whose returned type and
// format matched the requested ones. A zero WinProp means the property
// was absent or did not match.
type WinProp struct {
	Type     xproto.Atom
	Format   byte
	NumItems uint32
	Value    []byte
}

// Card32 returns the i'th 32-bit item of the property value.
func (p WinProp) Card32(i int) uint32 {
	return xgb.Get32(p.Value[i*4:])
}

// Cardinals returns all 32-bit items of the property value, or nil for
// a zero WinProp.
func (p WinProp) Cardinals() []uint32 {
	if p.NumItems == 0 {
		return nil
	}
	vals := make([]uint32, p.NumItems)
	for i := range vals {
		vals[i] = p.Card32(i)
	}
	return vals
}

// WindowProperty fetches up to length 32-bit units of a property of w,
// starting at offset. A zero typ accepts any type; a zero format
// accepts any format. A property whose actual type or format does not
// match comes back as a zero WinProp, not an error.
func (c *Connection) WindowProperty(w xproto.Window, prop xproto.Atom, offset, length uint32,
	typ xproto.Atom, format byte) (WinProp, error) {

	r, err := xproto.GetProperty(c.conn, false, w, prop, typ, offset, length).Reply()
	if err != nil {
		return WinProp{}, err
	}
	if len(r.Value) == 0 ||
		(typ != xproto.GetPropertyTypeAny && r.Type != typ) ||
		(format != 0 && r.Format != format) ||
		(r.Format != 8 && r.Format != 16 && r.Format != 32) {
		return WinProp{}, nil
	}
	return WinProp{
		Type:     r.Type,
		Format:   r.Format,
		NumItems: uint32(len(r.Value)) / uint32(r.Format/8),
		Value:    r.Value,
	}, nil
}

// WindowPropertyWindow returns the value of a WINDOW typed property of
// w, or 0.
func (c *Connection) WindowPropertyWindow(w xproto.Window, prop xproto.Atom) xproto.Window {
	p, err := c.WindowProperty(w, prop, 0, 1, xproto.AtomWindow, 32)
	if err != nil || p.NumItems == 0 {
		return xproto.WindowNone
	}
	return xproto.Window(p.Card32(0))
}

// WindowPropertyPixmap returns the value of a PIXMAP typed property of
// w, or 0.
func (c *Connection) WindowPropertyPixmap(w xproto.Window, prop xproto.Atom) xproto.Pixmap {
	p, err := c.WindowProperty(w, prop, 0, 1, xproto.AtomPixmap, 32)
	if err != nil || p.NumItems == 0 {
		return xproto.PixmapNone
	}
	return xproto.Pixmap(p.Card32(0))
}

// WindowPropertyCardinal returns the first numItems values of a
// CARDINAL typed property of w. Absent or mistyped properties come
// back as a nil slice.
func (c *Connection) WindowPropertyCardinal(w xproto.Window, prop xproto.Atom, numItems uint32) ([]uint32, error) {
	p, err := c.WindowProperty(w, prop, 0, numItems, xproto.AtomCardinal, 32)
	if err != nil {
		return nil, err
	}
	return p.Cardinals(), nil
}

// textPropertyLength bounds how much of a text property is fetched, in
// 32-bit units.
const textPropertyLength = 1024

// TextProperty returns the strings stored in a text property of w.
// STRING and UTF8_STRING properties hold NUL separated string lists.
func (c *Connection) TextProperty(w xproto.Window, prop xproto.Atom) ([]string, error) {
	p, err := c.WindowProperty(w, prop, 0, textPropertyLength, xproto.GetPropertyTypeAny, 8)
	if err != nil {
		return nil, err
	}
	return splitTextProperty(p.Value), nil
}

func splitTextProperty(value []byte) []string {
	if len(value) == 0 {
		return nil
	}
	// A trailing NUL terminates the last string rather than opening an
	// empty one.
	value = bytes.TrimSuffix(value, []byte{0})
	parts := bytes.Split(value, []byte{0})
	strs := make([]string, len(parts))
	for i, part := range parts {
		strs[i] = string(part)
	}
	return strs
}

// rootBackgroundProps names the root window properties that may point
// to a background pixmap.
var rootBackgroundProps = []string{
	"_XROOTPMAP_ID",
	"_XSETROOT_ID",
}

// RootBackPixmap looks up the root window's background pixmap, or 0 if
// no background property is set.
func (c *Connection) RootBackPixmap() xproto.Pixmap {
	for _, name := range rootBackgroundProps {
		atom, err := c.Atom(name)
		if err != nil {
			Logger.Debug("intern failed", "atom", name, "err", err)
			continue
		}
		if pixmap := c.WindowPropertyPixmap(c.screen.Root, atom); pixmap != xproto.PixmapNone {
			return pixmap
		}
	}
	return xproto.PixmapNone
}

// IsRootBackPixmapAtom reports whether atom names one of the root
// background pixmap properties.
func (c *Connection) IsRootBackPixmapAtom(atom xproto.Atom) bool {
	for _, name := range rootBackgroundProps {
		a, err := c.Atom(name)
		if err == nil && a == atom {
			return true
		}
	}
	return false
}
