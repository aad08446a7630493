package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

func TestCursorTracker(t *testing.T) {
	c := cursorTracker{captured: true}

	if _, _, ok := c.move(100, 100); ok {
		t.Error("first position should only set the baseline")
	}
	dx, dy, ok := c.move(110, 95)
	if !ok || dx != 10 || dy != -5 {
		t.Errorf("delta = (%v, %v, %v), want (10, -5, true)", dx, dy, ok)
	}
	if _, _, ok := c.move(110, 95); ok {
		t.Error("no movement should report nothing")
	}

	c.reset()
	if _, _, ok := c.move(500, 500); ok {
		t.Error("a reset must not turn a warp into a delta")
	}

	c.captured = false
	if _, _, ok := c.move(520, 500); ok {
		t.Error("released cursor should report nothing")
	}
}

func TestKeyDownRouting(t *testing.T) {
	tests := []struct {
		name         string
		captured     bool
		code         uint32
		wantClose    bool
		wantCaptured bool
		wantForward  bool
	}{
		{"key while captured", true, common.KeyW, false, true, true},
		{"key while released", false, common.KeyE, false, false, true},
		{"escape releases cursor", true, keyEscape, false, false, false},
		{"escape closes when released", false, keyEscape, true, false, false},
		{"click captures cursor", false, common.MouseLeft, false, true, false},
		{"click while captured", true, common.MouseLeft, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forwarded []uint32
			w := &engineWindow{}
			w.cursor.captured = tt.captured
			w.SetKeyDownCallback(func(code uint32) { forwarded = append(forwarded, code) })

			if got := w.keyDown(tt.code); got != tt.wantClose {
				t.Errorf("close = %v, want %v", got, tt.wantClose)
			}
			if w.CursorCaptured() != tt.wantCaptured {
				t.Errorf("captured = %v, want %v", w.CursorCaptured(), tt.wantCaptured)
			}
			if (len(forwarded) == 1) != tt.wantForward {
				t.Errorf("forwarded = %v, want forward %v", forwarded, tt.wantForward)
			}
		})
	}
}

func TestFocusLossReleasesCursor(t *testing.T) {
	var got []bool
	w := &engineWindow{}
	w.cursor.captured = true
	w.SetFocusCallback(func(focused bool) { got = append(got, focused) })

	w.focusChanged(false)
	if w.CursorCaptured() {
		t.Error("losing focus should release the cursor")
	}
	if len(got) != 1 || got[0] {
		t.Errorf("focus callback = %v, want [false]", got)
	}
}

func TestMouseCode(t *testing.T) {
	if mouseCode(0) != common.MouseLeft || mouseCode(1) != common.MouseRight {
		t.Errorf("mouse codes = %d, %d", mouseCode(0), mouseCode(1))
	}
	if isMouseCode(common.KeyW) || !isMouseCode(common.MouseLeft) {
		t.Error("isMouseCode misclassifies codes")
	}
}
