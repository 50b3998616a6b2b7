package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/stretchr/testify/assert"
)

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   GestureType
	}{
		{"tap", 3, 4, GestureNone},
		{"swipe left", -120, 10, GestureSwipeLeft},
		{"swipe right", 80, -20, GestureSwipeRight},
		{"swipe down", 5, 90, GestureSwipeDown},
		{"swipe up is ignored", 5, -90, GestureNone},
		{"just under threshold", 30, 30, GestureNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyGesture(tt.dx, tt.dy, DefaultSwipeThreshold))
		})
	}
}

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler_Touch(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.TouchDown(touchAt(200, 50))
	gh.TouchUp(touchAt(40, 60))

	// A cancelled touch reports nothing.
	gh.TouchDown(touchAt(40, 60))
	gh.TouchCancel(touchAt(40, 60))
	gh.TouchUp(touchAt(300, 60))

	gh.TouchDown(touchAt(100, 10))
	gh.TouchUp(touchAt(100, 200))

	assert.Equal(t, []GestureType{GestureSwipeLeft, GestureSwipeDown}, got)
}

func TestGestureHandler_Drag(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	for i := 0; i < 4; i++ {
		gh.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(20, 1)})
	}
	gh.DragEnd()

	// A short drag is ignored.
	gh.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-10, 0)})
	gh.DragEnd()

	// DragEnd without a drag does nothing.
	gh.DragEnd()

	assert.Equal(t, []GestureType{GestureSwipeRight}, got)
}
