// Package xconn wraps an X server connection with the operations a
// compositing client needs: Present vblank requests, window property
// fetching, render pictures and pixmaps, and a monotonic clock that is
// comparable with Present timestamps.
//
// A Connection is not safe for concurrent use; like the scheduler it
// serves, it is meant to be driven from a single loop goroutine. The
// one exception is the underlying event stream, which may be read from
// a dedicated reader goroutine via Conn().WaitForEvent.
package xconn

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/render"
	"github.com/jezek/xgb/xproto"

	"github.com/xsched/vblank/present"
)

// Logger emits connection diagnostics.
var Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "xconn"})

// Connection is a facade over an X server connection with the Present
// and Render extensions initialized.
type Connection struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo

	atoms map[string]xproto.Atom

	// Server picture formats, fetched once. They do not change for
	// the lifetime of the server.
	pictFormats *render.QueryPictFormatsReply

	// First error codes of the Render and Sync extensions, for
	// error naming.
	renderFirstError byte
	syncFirstError   byte
}

// Connect dials the X server named by display, or $DISPLAY when it is
// empty, and initializes the extensions the facade depends on.
func Connect(display string) (*Connection, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	c := &Connection{
		conn:  conn,
		setup: xproto.Setup(conn),
		atoms: make(map[string]xproto.Atom),
	}
	c.screen = c.setup.DefaultScreen(conn)

	if err := c.initExtensions(); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Connection) initExtensions() error {
	if err := present.Init(c.conn); err != nil {
		return fmt.Errorf("xconn: present extension: %w", err)
	}
	if _, err := present.QueryVersion(c.conn, 1, 2).Reply(); err != nil {
		return fmt.Errorf("xconn: present version handshake: %w", err)
	}
	if err := render.Init(c.conn); err != nil {
		return fmt.Errorf("xconn: render extension: %w", err)
	}

	qe, err := xproto.QueryExtension(c.conn, uint16(len("RENDER")), "RENDER").Reply()
	if err != nil {
		return fmt.Errorf("xconn: query RENDER extension: %w", err)
	}
	c.renderFirstError = qe.FirstError

	// Sync fences show up in Present pixmap requests, so its error
	// codes are worth naming too. The extension is not otherwise
	// initialized here.
	qe, err = xproto.QueryExtension(c.conn, uint16(len("SYNC")), "SYNC").Reply()
	if err != nil {
		return fmt.Errorf("xconn: query SYNC extension: %w", err)
	}
	if qe.Present {
		c.syncFirstError = qe.FirstError
	}
	return nil
}

// Conn exposes the underlying connection, for reading events.
func (c *Connection) Conn() *xgb.Conn { return c.conn }

// Screen returns the default screen.
func (c *Connection) Screen() *xproto.ScreenInfo { return c.screen }

// Root returns the root window of the default screen.
func (c *Connection) Root() xproto.Window { return c.screen.Root }

// Close closes the connection.
func (c *Connection) Close() { c.conn.Close() }

// RequestVblankEvent asks the server to emit a CompleteNotify event
// once the refresh interval identified by targetMsc, or the next one
// after it, ends. Fire and forget; the reply is the event itself.
func (c *Connection) RequestVblankEvent(window xproto.Window, targetMsc uint64) {
	present.NotifyMSC(c.conn, window, 0, targetMsc, 0, 0)
}

// SelectVblankEvents subscribes window to Present completion events and
// returns the event ID of the subscription.
func (c *Connection) SelectVblankEvents(window xproto.Window) (present.Event, error) {
	eid, err := present.NewEventId(c.conn)
	if err != nil {
		return 0, err
	}
	err = present.SelectInputChecked(c.conn, eid, window, present.EventMaskCompleteNotify).Check()
	if err != nil {
		return 0, fmt.Errorf("xconn: select Present input: %w", err)
	}
	return eid, nil
}
