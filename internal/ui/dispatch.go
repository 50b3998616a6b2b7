package ui

import "fyne.io/fyne/v2"

// dispatcher moves work between a background goroutine and the UI goroutine.
// Views never touch widgets from background; they hand results to main.
type dispatcher struct {
	background func(func())
	main       func(func())
}

func newDispatcher() dispatcher {
	return dispatcher{
		background: func(f func()) { go f() },
		main:       fyne.Do,
	}
}

// inline runs everything on the caller's goroutine. Used by tests.
func inline() dispatcher {
	run := func(f func()) { f() }
	return dispatcher{background: run, main: run}
}
