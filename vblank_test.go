package vblank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKinds(t *testing.T) {
	assert.Equal(t, PresentKind, New(PresentKind, func(Event) {}).Kind())
	assert.Equal(t, VideoSyncKind, New(VideoSyncKind, nil).Kind())
	require.Panics(t, func() { New(Kind(250), nil) })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "present", PresentKind.String())
	assert.Equal(t, "video-sync", VideoSyncKind.String())
	assert.Equal(t, "Kind(250)", Kind(250).String())
}

func TestVideoSyncNeverSchedules(t *testing.T) {
	c := &fakeConn{}
	s := New(VideoSyncKind, nil)

	assert.False(t, s.Schedule(10, c))
	assert.False(t, s.Schedule(10, c))
	assert.Empty(t, c.requests)
}
