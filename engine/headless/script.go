package headless

import "sort"

type eventKind int

const (
	eventPress eventKind = iota
	eventRelease
	eventLook
)

type event struct {
	kind   eventKind
	code   uint32
	dx, dy float32
}

// Script is a frame-indexed list of input events. Events for a frame are applied, in the order they
// were added, before that frame's update. Codes are physical key or mouse button codes as reported
// by the window (see common.KeyW, common.MouseLeft).
type Script struct {
	events map[int][]event
	last   int
}

// NewScript creates an empty Script.
func NewScript() *Script {
	return &Script{events: make(map[int][]event)}
}

// Press holds code down starting at frame.
func (s *Script) Press(frame int, code uint32) *Script {
	return s.add(frame, event{kind: eventPress, code: code})
}

// Release lets code go at frame.
func (s *Script) Release(frame int, code uint32) *Script {
	return s.add(frame, event{kind: eventRelease, code: code})
}

// Tap presses code for exactly one frame.
func (s *Script) Tap(frame int, code uint32) *Script {
	return s.Press(frame, code).Release(frame+1, code)
}

// Hold keeps code down from frame start up to, but not including, frame end.
func (s *Script) Hold(start, end int, code uint32) *Script {
	return s.Press(start, code).Release(end, code)
}

// Look moves the cursor by (dx, dy) pixels at frame.
func (s *Script) Look(frame int, dx, dy float32) *Script {
	return s.add(frame, event{kind: eventLook, dx: dx, dy: dy})
}

// Len returns the number of frames needed to play every event.
func (s *Script) Len() int {
	if len(s.events) == 0 {
		return 0
	}
	return s.last + 1
}

// Frames returns the frames that carry events, in ascending order.
func (s *Script) Frames() []int {
	frames := make([]int, 0, len(s.events))
	for f := range s.events {
		frames = append(frames, f)
	}
	sort.Ints(frames)
	return frames
}

func (s *Script) add(frame int, e event) *Script {
	if frame < 0 {
		frame = 0
	}
	s.events[frame] = append(s.events[frame], e)
	if frame > s.last {
		s.last = frame
	}
	return s
}

func (s *Script) at(frame int) []event {
	if s == nil {
		return nil
	}
	return s.events[frame]
}
