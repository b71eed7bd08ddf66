package xconn

import (
	"fmt"
	"math/bits"

	"github.com/jezek/xgb/render"
	"github.com/jezek/xgb/xproto"
)

// Standard identifies one of the picture formats every server with the
// Render extension provides, mirroring the xcb-render-util standard
// format table.
type Standard int

const (
	StandardARGB32 Standard = iota
	StandardRGB24
	StandardA8
	StandardA4
	StandardA1
)

var standardDirect = [...]struct {
	depth  byte
	direct render.Directformat
}{
	StandardARGB32: {32, render.Directformat{
		RedShift: 16, RedMask: 0xff,
		GreenShift: 8, GreenMask: 0xff,
		BlueShift: 0, BlueMask: 0xff,
		AlphaShift: 24, AlphaMask: 0xff,
	}},
	StandardRGB24: {24, render.Directformat{
		RedShift: 16, RedMask: 0xff,
		GreenShift: 8, GreenMask: 0xff,
		BlueShift: 0, BlueMask: 0xff,
	}},
	StandardA8: {8, render.Directformat{AlphaMask: 0xff}},
	StandardA4: {4, render.Directformat{AlphaMask: 0x0f}},
	StandardA1: {1, render.Directformat{AlphaMask: 0x01}},
}

// PictFormats returns the server's picture formats, fetched once and
// cached for the lifetime of the connection.
func (c *Connection) PictFormats() (*render.QueryPictFormatsReply, error) {
	if c.pictFormats != nil {
		return c.pictFormats, nil
	}
	r, err := render.QueryPictFormats(c.conn).Reply()
	if err != nil {
		return nil, fmt.Errorf("xconn: query pict formats: %w", err)
	}
	c.pictFormats = r
	return r, nil
}

// FindVisualFormat returns the picture format of visual, or nil when
// the server does not list one for it.
func (c *Connection) FindVisualFormat(visual xproto.Visualid) *render.Pictforminfo {
	r, err := c.PictFormats()
	if err != nil {
		Logger.Error("pict formats unavailable", "err", err)
		return nil
	}
	for _, screen := range r.Screens {
		for _, depth := range screen.Depths {
			for _, pv := range depth.Visuals {
				if pv.Visual == visual {
					return findFormatById(r.Formats, pv.Format)
				}
			}
		}
	}
	return nil
}

// StandardFormat returns the server's picture format matching std, or
// nil when the server lacks it.
func (c *Connection) StandardFormat(std Standard) *render.Pictforminfo {
	r, err := c.PictFormats()
	if err != nil {
		Logger.Error("pict formats unavailable", "err", err)
		return nil
	}
	return findStandardFormat(r.Formats, std)
}

// VisualForStandard returns a visual rendered with the standard format
// std, or 0 when no visual uses it.
func (c *Connection) VisualForStandard(std Standard) xproto.Visualid {
	pictfmt := c.StandardFormat(std)
	if pictfmt == nil {
		return 0
	}
	r, _ := c.PictFormats()
	for _, screen := range r.Screens {
		for _, depth := range screen.Depths {
			for _, pv := range depth.Visuals {
				if pv.Format == pictfmt.Id {
					return pv.Visual
				}
			}
		}
	}
	return 0
}

func findFormatById(formats []render.Pictforminfo, id render.Pictformat) *render.Pictforminfo {
	for i := range formats {
		if formats[i].Id == id {
			return &formats[i]
		}
	}
	return nil
}

func findStandardFormat(formats []render.Pictforminfo, std Standard) *render.Pictforminfo {
	want := standardDirect[std]
	for i := range formats {
		f := &formats[i]
		if f.Type == render.PictTypeDirect && f.Depth == want.depth && f.Direct == want.direct {
			return f
		}
	}
	return nil
}

// VisualDepth returns the depth of visual, or -1 when no screen lists
// it.
func (c *Connection) VisualDepth(visual xproto.Visualid) int {
	for _, screen := range c.setup.Roots {
		for _, depth := range screen.AllowedDepths {
			for _, v := range depth.Visuals {
				if v.VisualId == visual {
					return int(depth.Depth)
				}
			}
		}
	}
	return -1
}

// VisualChannels summarizes the channel layout of a visual, for
// matching against GL framebuffer configurations.
type VisualChannels struct {
	RedSize, GreenSize, BlueSize, AlphaSize int
	Depth                                   int
	Visual                                  xproto.Visualid
}

// VisualChannels resolves the channel sizes and depth of visual. Only
// direct color visuals are supported.
func (c *Connection) VisualChannels(visual xproto.Visualid) (VisualChannels, error) {
	pictfmt := c.FindVisualFormat(visual)
	depth := c.VisualDepth(visual)
	if pictfmt == nil || depth == -1 {
		return VisualChannels{}, fmt.Errorf("xconn: invalid visual %#03x", visual)
	}
	if pictfmt.Type != render.PictTypeDirect {
		return VisualChannels{}, fmt.Errorf("xconn: visual %#03x is not direct color", visual)
	}
	return VisualChannels{
		RedSize:   bits.OnesCount16(pictfmt.Direct.RedMask),
		GreenSize: bits.OnesCount16(pictfmt.Direct.GreenMask),
		BlueSize:  bits.OnesCount16(pictfmt.Direct.BlueMask),
		AlphaSize: bits.OnesCount16(pictfmt.Direct.AlphaMask),
		Depth:     depth,
		Visual:    visual,
	}, nil
}

// CreatePixmap creates a pixmap and checks that creation succeeded.
func (c *Connection) CreatePixmap(depth byte, drawable xproto.Drawable, width, height uint16) (xproto.Pixmap, error) {
	pix, err := xproto.NewPixmapId(c.conn)
	if err != nil {
		return xproto.PixmapNone, err
	}
	if err := xproto.CreatePixmapChecked(c.conn, depth, pix, drawable, width, height).Check(); err != nil {
		return xproto.PixmapNone, fmt.Errorf("xconn: create pixmap: %w", err)
	}
	return pix, nil
}

// ValidatePixmap reports whether pixmap names a live, non-empty pixmap.
// Detection is by GetGeometry; well, maybe there are better ways.
func (c *Connection) ValidatePixmap(pixmap xproto.Pixmap) bool {
	if pixmap == xproto.PixmapNone {
		return false
	}
	r, err := xproto.GetGeometry(c.conn, xproto.Drawable(pixmap)).Reply()
	if err != nil {
		return false
	}
	return r.Width != 0 && r.Height != 0
}

// CreatePictureForPixmap creates a picture over an existing pixmap.
// valueMask and valueList follow the CreatePicture request encoding.
func (c *Connection) CreatePictureForPixmap(pixmap xproto.Pixmap, pictfmt *render.Pictforminfo,
	valueMask uint32, valueList []uint32) (render.Picture, error) {

	pict, err := render.NewPictureId(c.conn)
	if err != nil {
		return 0, err
	}
	err = render.CreatePictureChecked(c.conn, pict, xproto.Drawable(pixmap),
		pictfmt.Id, valueMask, valueList).Check()
	if err != nil {
		return 0, fmt.Errorf("xconn: create picture: %w", err)
	}
	return pict, nil
}

// CreatePictureForVisualPixmap is CreatePictureForPixmap with the
// format looked up from a visual.
func (c *Connection) CreatePictureForVisualPixmap(pixmap xproto.Pixmap, visual xproto.Visualid,
	valueMask uint32, valueList []uint32) (render.Picture, error) {

	pictfmt := c.FindVisualFormat(visual)
	if pictfmt == nil {
		return 0, fmt.Errorf("xconn: no pict format for visual %#03x", visual)
	}
	return c.CreatePictureForPixmap(pixmap, pictfmt, valueMask, valueList)
}

// CreatePictureForStandardPixmap is CreatePictureForPixmap with a
// standard format.
func (c *Connection) CreatePictureForStandardPixmap(pixmap xproto.Pixmap, std Standard,
	valueMask uint32, valueList []uint32) (render.Picture, error) {

	pictfmt := c.StandardFormat(std)
	if pictfmt == nil {
		return 0, fmt.Errorf("xconn: server lacks standard format %d", std)
	}
	return c.CreatePictureForPixmap(pixmap, pictfmt, valueMask, valueList)
}

// CreatePicture creates a picture backed by a fresh pixmap of the
// format's depth. The pixmap is freed once the picture exists; the
// picture keeps the storage alive server side.
func (c *Connection) CreatePicture(d xproto.Drawable, width, height uint16,
	pictfmt *render.Pictforminfo, valueMask uint32, valueList []uint32) (render.Picture, error) {

	pix, err := c.CreatePixmap(pictfmt.Depth, d, width, height)
	if err != nil {
		return 0, err
	}
	pict, err := c.CreatePictureForPixmap(pix, pictfmt, valueMask, valueList)
	xproto.FreePixmap(c.conn, pix)
	return pict, err
}

// CreatePictureForVisual is CreatePicture with the format looked up
// from a visual.
func (c *Connection) CreatePictureForVisual(d xproto.Drawable, width, height uint16,
	visual xproto.Visualid, valueMask uint32, valueList []uint32) (render.Picture, error) {

	pictfmt := c.FindVisualFormat(visual)
	if pictfmt == nil {
		return 0, fmt.Errorf("xconn: no pict format for visual %#03x", visual)
	}
	return c.CreatePicture(d, width, height, pictfmt, valueMask, valueList)
}

// SetPictureClipRegion replaces the clip region of pict.
func (c *Connection) SetPictureClipRegion(pict render.Picture, originX, originY int16,
	rects []xproto.Rectangle) error {

	err := render.SetPictureClipRectanglesChecked(c.conn, pict, originX, originY, rects).Check()
	if err != nil {
		return fmt.Errorf("xconn: set picture clip region: %w", err)
	}
	return nil
}

// ClearPictureClipRegion removes the clip region of pict.
func (c *Connection) ClearPictureClipRegion(pict render.Picture) error {
	err := render.ChangePictureChecked(c.conn, pict, render.CpClipMask,
		[]uint32{xproto.PixmapNone}).Check()
	if err != nil {
		return fmt.Errorf("xconn: clear picture clip region: %w", err)
	}
	return nil
}
