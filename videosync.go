package vblank

import "github.com/jezek/xgb/xproto"

// videoSyncScheduler is the placeholder for a GLX_SGI_video_sync based
// vblank source. It holds no state and never schedules anything.
type videoSyncScheduler struct{}

func (*videoSyncScheduler) Kind() Kind { return VideoSyncKind }

func (*videoSyncScheduler) implementsScheduler() {}

func (*videoSyncScheduler) Schedule(xproto.Window, Connection) bool { return false }
