// Package present is the X client API for the Present extension.
//
// The request and reply encoding below follows the conventions of the
// xgbgen generated extension packages. Present delivers its events
// through the Generic Event extension, which xgbgen does not model, so
// this binding is maintained by hand: Init interposes on the Generic
// Event dispatch entry and routes events carrying Present's major
// opcode to the constructors in this package.
package present

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
)

// Fence is the Sync extension's FENCE xid that Present pixmap requests
// reference. No published Go binding carries the Sync extension, so the
// xid type is bound here.
type Fence uint32

// Init must be called before using the Present extension.
func Init(c *xgb.Conn) error {
	reply, err := xproto.QueryExtension(c, 7, "Present").Reply()
	if err != nil {
		return err
	}
	if !reply.Present {
		return xgb.Errorf("No extension named Present could be found on on the server.")
	}

	c.ExtLock.Lock()
	c.Extensions["Present"] = reply.MajorOpcode
	hookGenericEvents(reply.MajorOpcode)
	c.ExtLock.Unlock()

	return nil
}

const (
	// GenericEventCode is the core event code reserved for the
	// Generic Event extension.
	GenericEventCode = 35

	// geHeaderSize is the number of bytes before the event specific
	// fields of a Generic Event.
	geHeaderSize = 10
)

var (
	presentOpcode byte
	geFallback    xgb.NewEventFun
	geHooked      bool
)

// presentEventFuncs routes the event type field of a Generic Event to
// the matching constructor.
var presentEventFuncs = map[int]xgb.NewEventFun{
	ConfigureNotify: ConfigureNotifyEventNew,
	CompleteNotify:  CompleteNotifyEventNew,
	IdleNotify:      IdleNotifyEventNew,
}

// hookGenericEvents interposes on the Generic Event entry of the event
// dispatch table. Present events carry the extension's major opcode in
// their second byte; anything else is handed to whichever constructor
// was registered before ours, so extensions that install their own
// Generic Event handling keep working.
func hookGenericEvents(opcode byte) {
	presentOpcode = opcode
	if geHooked {
		return
	}
	geHooked = true
	geFallback = xgb.NewEventFuncs[GenericEventCode]
	xgb.NewEventFuncs[GenericEventCode] = dispatchGenericEvent
}

func dispatchGenericEvent(buf []byte) xgb.Event {
	if buf[1] == presentOpcode {
		if fun, ok := presentEventFuncs[int(xgb.Get16(buf[8:]))]; ok {
			return fun(buf)
		}
	}
	if geFallback != nil {
		return geFallback(buf)
	}
	return GenericEventNew(buf)
}

// get64 reads an unsigned 64-bit little endian integer, low word
// first, matching the CARD64 wire encoding.
func get64(buf []byte) uint64 {
	return uint64(xgb.Get32(buf)) | uint64(xgb.Get32(buf[4:]))<<32
}

// put64 writes an unsigned 64-bit integer as two little endian words.
func put64(buf []byte, v uint64) {
	xgb.Put32(buf, uint32(v))
	xgb.Put32(buf[4:], uint32(v>>32))
}

// Event is the XID type naming a Present event subscription.
type Event uint32

func NewEventId(c *xgb.Conn) (Event, error) {
	id, err := c.NewId()
	if err != nil {
		return 0, err
	}
	return Event(id), nil
}

const (
	EventMaskNoEvent         = 0
	EventMaskConfigureNotify = 1
	EventMaskCompleteNotify  = 2
	EventMaskIdleNotify      = 4
	EventMaskRedirectNotify  = 8
)

const (
	CompleteKindPixmap    = 0
	CompleteKindNotifyMSC = 1
)

const (
	CompleteModeCopy           = 0
	CompleteModeFlip           = 1
	CompleteModeSkip           = 2
	CompleteModeSuboptimalCopy = 3
)

const (
	OptionNone       = 0
	OptionAsync      = 1
	OptionCopy       = 2
	OptionUST        = 4
	OptionSuboptimal = 8
)

const (
	CapabilityNone  = 0
	CapabilityAsync = 1
	CapabilityFence = 2
	CapabilityUST   = 4
)

type Notify struct {
	Window xproto.Window
	Serial uint32
}

// NotifyListBytes writes a list of Notify values to a byte slice.
func NotifyListBytes(buf []byte, list []Notify) int {
	b := 0
	for _, item := range list {
		xgb.Put32(buf[b:], uint32(item.Window))
		b += 4
		xgb.Put32(buf[b:], item.Serial)
		b += 4
	}
	return b
}

const (
	ConfigureNotify = 0
	CompleteNotify  = 1
	IdleNotify      = 2
)

// ConfigureNotifyEvent reports a size or position change of a window
// with a Present event subscription.
type ConfigureNotifyEvent struct {
	Sequence     uint16
	Event        Event
	Window       xproto.Window
	X            int16
	Y            int16
	Width        uint16
	Height       uint16
	OffX         int16
	OffY         int16
	PixmapWidth  uint16
	PixmapHeight uint16
	PixmapFlags  uint32
}

// ConfigureNotifyEventNew constructs a ConfigureNotifyEvent value that
// implements xgb.Event from a byte slice.
func ConfigureNotifyEventNew(buf []byte) xgb.Event {
	v := ConfigureNotifyEvent{}
	v.Sequence = xgb.Get16(buf[2:])
	b := geHeaderSize

	b += 2 // padding

	v.Event = Event(xgb.Get32(buf[b:]))
	b += 4

	v.Window = xproto.Window(xgb.Get32(buf[b:]))
	b += 4

	v.X = int16(xgb.Get16(buf[b:]))
	b += 2

	v.Y = int16(xgb.Get16(buf[b:]))
	b += 2

	v.Width = xgb.Get16(buf[b:])
	b += 2

	v.Height = xgb.Get16(buf[b:])
	b += 2

	v.OffX = int16(xgb.Get16(buf[b:]))
	b += 2

	v.OffY = int16(xgb.Get16(buf[b:]))
	b += 2

	v.PixmapWidth = xgb.Get16(buf[b:])
	b += 2

	v.PixmapHeight = xgb.Get16(buf[b:])
	b += 2

	v.PixmapFlags = xgb.Get32(buf[b:])

	return v
}

// Bytes writes a ConfigureNotifyEvent value to a byte slice.
func (v ConfigureNotifyEvent) Bytes() []byte {
	buf := make([]byte, 40)
	writeGeHeader(buf, ConfigureNotify, v.Sequence)
	b := geHeaderSize

	b += 2 // padding

	xgb.Put32(buf[b:], uint32(v.Event))
	b += 4

	xgb.Put32(buf[b:], uint32(v.Window))
	b += 4

	xgb.Put16(buf[b:], uint16(v.X))
	b += 2

	xgb.Put16(buf[b:], uint16(v.Y))
	b += 2

	xgb.Put16(buf[b:], v.Width)
	b += 2

	xgb.Put16(buf[b:], v.Height)
	b += 2

	xgb.Put16(buf[b:], uint16(v.OffX))
	b += 2

	xgb.Put16(buf[b:], uint16(v.OffY))
	b += 2

	xgb.Put16(buf[b:], v.PixmapWidth)
	b += 2

	xgb.Put16(buf[b:], v.PixmapHeight)
	b += 2

	xgb.Put32(buf[b:], v.PixmapFlags)

	return buf
}

// SequenceId returns the sequence id attached to the ConfigureNotify
// event. This is mostly used internally.
func (v ConfigureNotifyEvent) SequenceId() uint16 {
	return v.Sequence
}

// String is a rudimentary string representation of
// ConfigureNotifyEvent.
func (v ConfigureNotifyEvent) String() string {
	return fmt.Sprintf("ConfigureNotify {Sequence: %d, Event: %d, Window: %d, X: %d, Y: %d, Width: %d, Height: %d}",
		v.Sequence, v.Event, v.Window, v.X, v.Y, v.Width, v.Height)
}

// CompleteNotifyEvent reports the completion of a Pixmap presentation
// or, for CompleteKindNotifyMSC, the end of the refresh interval named
// by a NotifyMSC request. Ust and Msc are the timestamp and field
// counter of the completed interval.
type CompleteNotifyEvent struct {
	Sequence uint16
	Kind     byte
	Mode     byte
	Event    Event
	Window   xproto.Window
	Serial   uint32
	Ust      uint64
	Msc      uint64
}

// CompleteNotifyEventNew constructs a CompleteNotifyEvent value that
// implements xgb.Event from a byte slice.
func CompleteNotifyEventNew(buf []byte) xgb.Event {
	v := CompleteNotifyEvent{}
	v.Sequence = xgb.Get16(buf[2:])
	b := geHeaderSize

	v.Kind = buf[b]
	b += 1

	v.Mode = buf[b]
	b += 1

	v.Event = Event(xgb.Get32(buf[b:]))
	b += 4

	v.Window = xproto.Window(xgb.Get32(buf[b:]))
	b += 4

	v.Serial = xgb.Get32(buf[b:])
	b += 4

	v.Ust = get64(buf[b:])
	b += 8

	v.Msc = get64(buf[b:])

	return v
}

// Bytes writes a CompleteNotifyEvent value to a byte slice.
func (v CompleteNotifyEvent) Bytes() []byte {
	buf := make([]byte, 40)
	writeGeHeader(buf, CompleteNotify, v.Sequence)
	b := geHeaderSize

	buf[b] = v.Kind
	b += 1

	buf[b] = v.Mode
	b += 1

	xgb.Put32(buf[b:], uint32(v.Event))
	b += 4

	xgb.Put32(buf[b:], uint32(v.Window))
	b += 4

	xgb.Put32(buf[b:], v.Serial)
	b += 4

	put64(buf[b:], v.Ust)
	b += 8

	put64(buf[b:], v.Msc)

	return buf
}

// SequenceId returns the sequence id attached to the CompleteNotify
// event. This is mostly used internally.
func (v CompleteNotifyEvent) SequenceId() uint16 {
	return v.Sequence
}

// String is a rudimentary string representation of
// CompleteNotifyEvent.
func (v CompleteNotifyEvent) String() string {
	return fmt.Sprintf("CompleteNotify {Sequence: %d, Kind: %d, Mode: %d, Window: %d, Serial: %d, Ust: %d, Msc: %d}",
		v.Sequence, v.Kind, v.Mode, v.Window, v.Serial, v.Ust, v.Msc)
}

// IdleNotifyEvent reports that a presented pixmap is idle and may be
// reused by the client.
type IdleNotifyEvent struct {
	Sequence  uint16
	Event     Event
	Window    xproto.Window
	Serial    uint32
	Pixmap    xproto.Pixmap
	IdleFence Fence
}

// IdleNotifyEventNew constructs an IdleNotifyEvent value that
// implements xgb.Event from a byte slice.
func IdleNotifyEventNew(buf []byte) xgb.Event {
	v := IdleNotifyEvent{}
	v.Sequence = xgb.Get16(buf[2:])
	b := geHeaderSize

	b += 2 // padding

	v.Event = Event(xgb.Get32(buf[b:]))
	b += 4

	v.Window = xproto.Window(xgb.Get32(buf[b:]))
	b += 4

	v.Serial = xgb.Get32(buf[b:])
	b += 4

	v.Pixmap = xproto.Pixmap(xgb.Get32(buf[b:]))
	b += 4

	v.IdleFence = Fence(xgb.Get32(buf[b:]))

	return v
}

// Bytes writes an IdleNotifyEvent value to a byte slice.
func (v IdleNotifyEvent) Bytes() []byte {
	buf := make([]byte, 32)
	writeGeHeader(buf, IdleNotify, v.Sequence)
	b := geHeaderSize

	b += 2 // padding

	xgb.Put32(buf[b:], uint32(v.Event))
	b += 4

	xgb.Put32(buf[b:], uint32(v.Window))
	b += 4

	xgb.Put32(buf[b:], v.Serial)
	b += 4

	xgb.Put32(buf[b:], uint32(v.Pixmap))
	b += 4

	xgb.Put32(buf[b:], uint32(v.IdleFence))

	return buf
}

// SequenceId returns the sequence id attached to the IdleNotify event.
// This is mostly used internally.
func (v IdleNotifyEvent) SequenceId() uint16 {
	return v.Sequence
}

// String is a rudimentary string representation of IdleNotifyEvent.
func (v IdleNotifyEvent) String() string {
	return fmt.Sprintf("IdleNotify {Sequence: %d, Event: %d, Window: %d, Serial: %d, Pixmap: %d}",
		v.Sequence, v.Event, v.Window, v.Serial, v.Pixmap)
}

// writeGeHeader writes the common Generic Event header. The length
// field counts 4-byte units past the base 32 bytes.
func writeGeHeader(buf []byte, evType int, sequence uint16) {
	buf[0] = GenericEventCode
	buf[1] = presentOpcode
	xgb.Put16(buf[2:], sequence)
	xgb.Put32(buf[4:], uint32((len(buf)-32)/4))
	xgb.Put16(buf[8:], uint16(evType))
}

// GenericEvent preserves a Generic Event from an extension this
// package does not decode.
type GenericEvent struct {
	Sequence  uint16
	Extension byte
	Type      uint16
	Data      []byte
}

// GenericEventNew constructs a GenericEvent value that implements
// xgb.Event from a byte slice.
func GenericEventNew(buf []byte) xgb.Event {
	return GenericEvent{
		Sequence:  xgb.Get16(buf[2:]),
		Extension: buf[1],
		Type:      xgb.Get16(buf[8:]),
		Data:      buf,
	}
}

// Bytes returns the raw event bytes.
func (v GenericEvent) Bytes() []byte { return v.Data }

// SequenceId returns the sequence id attached to the event.
func (v GenericEvent) SequenceId() uint16 { return v.Sequence }

// String is a rudimentary string representation of GenericEvent.
func (v GenericEvent) String() string {
	return fmt.Sprintf("GenericEvent {Sequence: %d, Extension: %d, Type: %d}",
		v.Sequence, v.Extension, v.Type)
}

// QueryVersionCookie is a cookie used only for QueryVersion requests.
type QueryVersionCookie struct {
	*xgb.Cookie
}

// QueryVersion sends a checked request.
// If an error occurs, it will be returned with the reply by calling
// Reply.
func QueryVersion(c *xgb.Conn, MajorVersion uint32, MinorVersion uint32) QueryVersionCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'QueryVersion' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(true, true)
	c.NewRequest(queryVersionRequest(c, MajorVersion, MinorVersion), cookie)
	return QueryVersionCookie{cookie}
}

// QueryVersionUnchecked sends an unchecked request.
// If an error occurs, it can only be retrieved using
// xgb.WaitForEvent or xgb.PollForEvent.
func QueryVersionUnchecked(c *xgb.Conn, MajorVersion uint32, MinorVersion uint32) QueryVersionCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'QueryVersion' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(false, true)
	c.NewRequest(queryVersionRequest(c, MajorVersion, MinorVersion), cookie)
	return QueryVersionCookie{cookie}
}

// QueryVersionReply represents the data returned from a QueryVersion
// request.
type QueryVersionReply struct {
	Sequence uint16 // sequence number of the request for this reply
	Length   uint32 // number of bytes in this reply
	// padding: 1 bytes
	MajorVersion uint32
	MinorVersion uint32
}

// Reply blocks and returns the reply data for a QueryVersion request.
func (cook QueryVersionCookie) Reply() (*QueryVersionReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return queryVersionReply(buf), nil
}

// queryVersionReply reads a byte slice into a QueryVersionReply value.
func queryVersionReply(buf []byte) *QueryVersionReply {
	v := new(QueryVersionReply)
	b := 1 // skip reply determinant

	b += 1 // padding

	v.Sequence = xgb.Get16(buf[b:])
	b += 2

	v.Length = xgb.Get32(buf[b:]) // 4-byte units
	b += 4

	v.MajorVersion = xgb.Get32(buf[b:])
	b += 4

	v.MinorVersion = xgb.Get32(buf[b:])

	return v
}

// Write request to wire for QueryVersion
// queryVersionRequest writes a request to a byte slice.
func queryVersionRequest(c *xgb.Conn, MajorVersion uint32, MinorVersion uint32) []byte {
	size := 12
	b := 0
	buf := make([]byte, size)

	c.ExtLock.RLock()
	buf[b] = c.Extensions["Present"]
	c.ExtLock.RUnlock()
	b += 1

	buf[b] = 0 // request opcode
	b += 1

	xgb.Put16(buf[b:], uint16(size/4)) // write request size in 4-byte units
	b += 2

	xgb.Put32(buf[b:], MajorVersion)
	b += 4

	xgb.Put32(buf[b:], MinorVersion)

	return buf
}

// PixmapCookie is a cookie used only for Pixmap requests.
type PixmapCookie struct {
	*xgb.Cookie
}

// Pixmap sends an unchecked request.
// If an error occurs, it can only be retrieved using xgb.WaitForEvent
// or xgb.PollForEvent.
func Pixmap(c *xgb.Conn, Window xproto.Window, Pixmap xproto.Pixmap, Serial uint32, Valid xfixes.Region, Update xfixes.Region, XOff int16, YOff int16, TargetCrtc randr.Crtc, WaitFence Fence, IdleFence Fence, Options uint32, TargetMsc uint64, Divisor uint64, Remainder uint64, Notifies []Notify) PixmapCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'Pixmap' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(false, false)
	c.NewRequest(pixmapRequest(c, Window, Pixmap, Serial, Valid, Update, XOff, YOff, TargetCrtc, WaitFence, IdleFence, Options, TargetMsc, Divisor, Remainder, Notifies), cookie)
	return PixmapCookie{cookie}
}

// PixmapChecked sends a checked request.
// If an error occurs, it can be retrieved using PixmapCookie.Check.
func PixmapChecked(c *xgb.Conn, Window xproto.Window, Pixmap xproto.Pixmap, Serial uint32, Valid xfixes.Region, Update xfixes.Region, XOff int16, YOff int16, TargetCrtc randr.Crtc, WaitFence Fence, IdleFence Fence, Options uint32, TargetMsc uint64, Divisor uint64, Remainder uint64, Notifies []Notify) PixmapCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'Pixmap' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(true, false)
	c.NewRequest(pixmapRequest(c, Window, Pixmap, Serial, Valid, Update, XOff, YOff, TargetCrtc, WaitFence, IdleFence, Options, TargetMsc, Divisor, Remainder, Notifies), cookie)
	return PixmapCookie{cookie}
}

// Check returns an error if one occurred for checked requests that are
// not expecting a reply.
// This cannot be called for requests expecting a reply, nor for
// unchecked requests.
func (cook PixmapCookie) Check() error {
	return cook.Cookie.Check()
}

// Write request to wire for Pixmap
// pixmapRequest writes a request to a byte slice.
func pixmapRequest(c *xgb.Conn, Window xproto.Window, Pixmap xproto.Pixmap, Serial uint32, Valid xfixes.Region, Update xfixes.Region, XOff int16, YOff int16, TargetCrtc randr.Crtc, WaitFence Fence, IdleFence Fence, Options uint32, TargetMsc uint64, Divisor uint64, Remainder uint64, Notifies []Notify) []byte {
	size := 72 + len(Notifies)*8
	b := 0
	buf := make([]byte, size)

	c.ExtLock.RLock()
	buf[b] = c.Extensions["Present"]
	c.ExtLock.RUnlock()
	b += 1

	buf[b] = 1 // request opcode
	b += 1

	xgb.Put16(buf[b:], uint16(size/4)) // write request size in 4-byte units
	b += 2

	xgb.Put32(buf[b:], uint32(Window))
	b += 4

	xgb.Put32(buf[b:], uint32(Pixmap))
	b += 4

	xgb.Put32(buf[b:], Serial)
	b += 4

	xgb.Put32(buf[b:], uint32(Valid))
	b += 4

	xgb.Put32(buf[b:], uint32(Update))
	b += 4

	xgb.Put16(buf[b:], uint16(XOff))
	b += 2

	xgb.Put16(buf[b:], uint16(YOff))
	b += 2

	xgb.Put32(buf[b:], uint32(TargetCrtc))
	b += 4

	xgb.Put32(buf[b:], uint32(WaitFence))
	b += 4

	xgb.Put32(buf[b:], uint32(IdleFence))
	b += 4

	xgb.Put32(buf[b:], Options)
	b += 4

	b += 4 // padding

	put64(buf[b:], TargetMsc)
	b += 8

	put64(buf[b:], Divisor)
	b += 8

	put64(buf[b:], Remainder)
	b += 8

	b += NotifyListBytes(buf[b:], Notifies)

	return buf
}

// NotifyMSCCookie is a cookie used only for NotifyMSC requests.
type NotifyMSCCookie struct {
	*xgb.Cookie
}

// NotifyMSC sends an unchecked request.
// If an error occurs, it can only be retrieved using xgb.WaitForEvent
// or xgb.PollForEvent.
func NotifyMSC(c *xgb.Conn, Window xproto.Window, Serial uint32, TargetMsc uint64, Divisor uint64, Remainder uint64) NotifyMSCCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'NotifyMSC' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(false, false)
	c.NewRequest(notifyMSCRequest(c, Window, Serial, TargetMsc, Divisor, Remainder), cookie)
	return NotifyMSCCookie{cookie}
}

// NotifyMSCChecked sends a checked request.
// If an error occurs, it can be retrieved using NotifyMSCCookie.Check.
func NotifyMSCChecked(c *xgb.Conn, Window xproto.Window, Serial uint32, TargetMsc uint64, Divisor uint64, Remainder uint64) NotifyMSCCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'NotifyMSC' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(true, false)
	c.NewRequest(notifyMSCRequest(c, Window, Serial, TargetMsc, Divisor, Remainder), cookie)
	return NotifyMSCCookie{cookie}
}

// Check returns an error if one occurred for checked requests that are
// not expecting a reply.
// This cannot be called for requests expecting a reply, nor for
// unchecked requests.
func (cook NotifyMSCCookie) Check() error {
	return cook.Cookie.Check()
}

// Write request to wire for NotifyMSC
// notifyMSCRequest writes a request to a byte slice.
func notifyMSCRequest(c *xgb.Conn, Window xproto.Window, Serial uint32, TargetMsc uint64, Divisor uint64, Remainder uint64) []byte {
	size := 40
	b := 0
	buf := make([]byte, size)

	c.ExtLock.RLock()
	buf[b] = c.Extensions["Present"]
	c.ExtLock.RUnlock()
	b += 1

	buf[b] = 2 // request opcode
	b += 1

	xgb.Put16(buf[b:], uint16(size/4)) // write request size in 4-byte units
	b += 2

	xgb.Put32(buf[b:], uint32(Window))
	b += 4

	xgb.Put32(buf[b:], Serial)
	b += 4

	b += 4 // padding

	put64(buf[b:], TargetMsc)
	b += 8

	put64(buf[b:], Divisor)
	b += 8

	put64(buf[b:], Remainder)

	return buf
}

// SelectInputCookie is a cookie used only for SelectInput requests.
type SelectInputCookie struct {
	*xgb.Cookie
}

// SelectInput sends an unchecked request.
// If an error occurs, it can only be retrieved using xgb.WaitForEvent
// or xgb.PollForEvent.
func SelectInput(c *xgb.Conn, Eid Event, Window xproto.Window, EventMask uint32) SelectInputCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'SelectInput' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(false, false)
	c.NewRequest(selectInputRequest(c, Eid, Window, EventMask), cookie)
	return SelectInputCookie{cookie}
}

// SelectInputChecked sends a checked request.
// If an error occurs, it can be retrieved using
// SelectInputCookie.Check.
func SelectInputChecked(c *xgb.Conn, Eid Event, Window xproto.Window, EventMask uint32) SelectInputCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'SelectInput' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(true, false)
	c.NewRequest(selectInputRequest(c, Eid, Window, EventMask), cookie)
	return SelectInputCookie{cookie}
}

// Check returns an error if one occurred for checked requests that are
// not expecting a reply.
// This cannot be called for requests expecting a reply, nor for
// unchecked requests.
func (cook SelectInputCookie) Check() error {
	return cook.Cookie.Check()
}

// Write request to wire for SelectInput
// selectInputRequest writes a request to a byte slice.
func selectInputRequest(c *xgb.Conn, Eid Event, Window xproto.Window, EventMask uint32) []byte {
	size := 16
	b := 0
	buf := make([]byte, size)

	c.ExtLock.RLock()
	buf[b] = c.Extensions["Present"]
	c.ExtLock.RUnlock()
	b += 1

	buf[b] = 3 // request opcode
	b += 1

	xgb.Put16(buf[b:], uint16(size/4)) // write request size in 4-byte units
	b += 2

	xgb.Put32(buf[b:], uint32(Eid))
	b += 4

	xgb.Put32(buf[b:], uint32(Window))
	b += 4

	xgb.Put32(buf[b:], EventMask)

	return buf
}

// QueryCapabilitiesCookie is a cookie used only for QueryCapabilities
// requests.
type QueryCapabilitiesCookie struct {
	*xgb.Cookie
}

// QueryCapabilities sends a checked request.
// If an error occurs, it will be returned with the reply by calling
// Reply.
func QueryCapabilities(c *xgb.Conn, Target uint32) QueryCapabilitiesCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'QueryCapabilities' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(true, true)
	c.NewRequest(queryCapabilitiesRequest(c, Target), cookie)
	return QueryCapabilitiesCookie{cookie}
}

// QueryCapabilitiesUnchecked sends an unchecked request.
// If an error occurs, it can only be retrieved using xgb.WaitForEvent
// or xgb.PollForEvent.
func QueryCapabilitiesUnchecked(c *xgb.Conn, Target uint32) QueryCapabilitiesCookie {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions["Present"]; !ok {
		panic("Cannot issue request 'QueryCapabilities' using the uninitialized extension 'Present'. present.Init(connObj) must be called first.")
	}
	cookie := c.NewCookie(false, true)
	c.NewRequest(queryCapabilitiesRequest(c, Target), cookie)
	return QueryCapabilitiesCookie{cookie}
}

// QueryCapabilitiesReply represents the data returned from a
// QueryCapabilities request.
type QueryCapabilitiesReply struct {
	Sequence uint16 // sequence number of the request for this reply
	Length   uint32 // number of bytes in this reply
	// padding: 1 bytes
	Capabilities uint32
}

// Reply blocks and returns the reply data for a QueryCapabilities
// request.
func (cook QueryCapabilitiesCookie) Reply() (*QueryCapabilitiesReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return queryCapabilitiesReply(buf), nil
}

// queryCapabilitiesReply reads a byte slice into a
// QueryCapabilitiesReply value.
func queryCapabilitiesReply(buf []byte) *QueryCapabilitiesReply {
	v := new(QueryCapabilitiesReply)
	b := 1 // skip reply determinant

	b += 1 // padding

	v.Sequence = xgb.Get16(buf[b:])
	b += 2

	v.Length = xgb.Get32(buf[b:]) // 4-byte units
	b += 4

	v.Capabilities = xgb.Get32(buf[b:])

	return v
}

// Write request to wire for QueryCapabilities
// queryCapabilitiesRequest writes a request to a byte slice.
func queryCapabilitiesRequest(c *xgb.Conn, Target uint32) []byte {
	size := 8
	b := 0
	buf := make([]byte, size)

	c.ExtLock.RLock()
	buf[b] = c.Extensions["Present"]
	c.ExtLock.RUnlock()
	b += 1

	buf[b] = 4 // request opcode
	b += 1

	xgb.Put16(buf[b:], uint16(size/4)) // write request size in 4-byte units
	b += 2

	xgb.Put32(buf[b:], Target)

	return buf
}
