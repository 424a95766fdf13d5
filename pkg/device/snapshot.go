package device

import (
	"errors"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Snapshot is a Source backed by a client-reported signals document:
//
//	{
//	  "user_agent": "...",
//	  "viewport": {"width": 390, "height": 844},
//	  "touch": {"events": true, "max_touch_points": 5, "ms_max_touch_points": 0}
//	}
//
// Missing or malformed fields degrade to zero values, never to an error,
// so every heuristic downstream treats them as non-matching.
type Snapshot struct {
	userAgent string
	width     int
	height    int
	touch     TouchSupport
}

// NewSnapshot creates a snapshot from already-known signal values.
func NewSnapshot(userAgent string, width, height int, touch TouchSupport) Snapshot {
	return Snapshot{
		userAgent: userAgent,
		width:     width,
		height:    height,
		touch:     touch,
	}
}

// ParseSnapshot extracts signals from a raw JSON document. Lenient by
// construction: absent paths yield zero values.
func ParseSnapshot(data []byte) Snapshot {
	return Snapshot{
		userAgent: gjson.GetBytes(data, "user_agent").String(),
		width:     int(gjson.GetBytes(data, "viewport.width").Int()),
		height:    int(gjson.GetBytes(data, "viewport.height").Int()),
		touch: TouchSupport{
			Events:           gjson.GetBytes(data, "touch.events").Bool(),
			MaxTouchPoints:   int(gjson.GetBytes(data, "touch.max_touch_points").Int()),
			MSMaxTouchPoints: int(gjson.GetBytes(data, "touch.ms_max_touch_points").Int()),
		},
	}
}

func (s Snapshot) UserAgent() string              { return s.userAgent }
func (s Snapshot) ViewportSize() (width, height int) { return s.width, s.height }
func (s Snapshot) TouchSupport() TouchSupport     { return s.touch }

// PatchViewport returns a copy of a raw signals document with its viewport
// dimensions replaced and every other field preserved byte for byte.
// Useful for replaying recorded resize sequences against a session.
func PatchViewport(data []byte, width, height int) ([]byte, error) {
	out, err := sjson.SetBytes(data, "viewport.width", width)
	if err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}
	out, err = sjson.SetBytes(out, "viewport.height", height)
	if err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}
	return out, nil
}

// SnapshotSource is a Source whose snapshot can be swapped between
// evaluations, for driving a session from recorded or simulated signal
// sequences. Safe for concurrent use.
type SnapshotSource struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewSnapshotSource creates a source seeded with an initial snapshot.
func NewSnapshotSource(snap Snapshot) *SnapshotSource {
	return &SnapshotSource{snap: snap}
}

// Set replaces the whole snapshot.
func (s *SnapshotSource) Set(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// SetViewport updates only the viewport dimensions, simulating a resize.
func (s *SnapshotSource) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.width = width
	s.snap.height = height
}

func (s *SnapshotSource) UserAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.userAgent
}

func (s *SnapshotSource) ViewportSize() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.width, s.snap.height
}

func (s *SnapshotSource) TouchSupport() TouchSupport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.touch
}
