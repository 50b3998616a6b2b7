package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeDown
)

// DefaultSwipeThreshold is the shortest movement that counts as a swipe.
const DefaultSwipeThreshold float32 = 50.0

// ClassifyGesture turns a finished touch or drag into a gesture. Movement
// shorter than threshold and upward swipes are ignored.
func ClassifyGesture(dx, dy, threshold float32) GestureType {
	if dx*dx+dy*dy < threshold*threshold {
		return GestureNone
	}
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureNone
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// GestureHandler tracks one touch or drag and reports the resulting gesture.
type GestureHandler struct {
	onGesture func(GestureType)

	touchStartPos fyne.Position
	touching      bool

	// accumulated drag delta for pointer devices
	dragDX, dragDY float32
	dragging       bool

	swipeThreshold float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartPos = event.Position
	gh.touching = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.touching {
		return
	}
	gh.touching = false
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gh.trigger(ClassifyGesture(dx, dy, gh.swipeThreshold))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touching = false
}

// Dragged accumulates a mouse drag so desktop users can swipe too.
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	if !gh.dragging {
		gh.dragging = true
		gh.dragDX, gh.dragDY = 0, 0
	}
	gh.dragDX += event.Dragged.DX
	gh.dragDY += event.Dragged.DY
}

// DragEnd reports a swipe when the drag travelled far enough.
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	gh.dragging = false
	gh.trigger(ClassifyGesture(gh.dragDX, gh.dragDY, gh.swipeThreshold))
}

func (gh *GestureHandler) trigger(g GestureType) {
	if gh.onGesture != nil && g != GestureNone {
		gh.onGesture(g)
	}
}

// SwipeArea wraps content and forwards touch and drag gestures to a handler.
type SwipeArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *GestureHandler
}

var (
	_ mobile.Touchable = (*SwipeArea)(nil)
	_ fyne.Draggable   = (*SwipeArea)(nil)
)

// NewSwipeArea creates a swipe-aware wrapper around content.
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer creates the renderer for the swipe area
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

func (sa *SwipeArea) TouchDown(e *mobile.TouchEvent)   { sa.handler.TouchDown(e) }
func (sa *SwipeArea) TouchUp(e *mobile.TouchEvent)     { sa.handler.TouchUp(e) }
func (sa *SwipeArea) TouchCancel(e *mobile.TouchEvent) { sa.handler.TouchCancel(e) }
func (sa *SwipeArea) Dragged(e *fyne.DragEvent)        { sa.handler.Dragged(e) }
func (sa *SwipeArea) DragEnd()                         { sa.handler.DragEnd() }
