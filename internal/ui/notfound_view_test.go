package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundView_GoHome(t *testing.T) {
	var paths []string
	deps := testDeps(t, &fakeFetcher{})
	deps.Navigate = func(p string) { paths = append(paths, p) }

	v := NewNotFoundView(deps)
	assert.NotNil(t, v.Content())

	test.Tap(v.homeBtn)
	assert.Equal(t, []string{RouteHome}, paths)
}

func TestNotFoundView_Localized(t *testing.T) {
	deps := testDeps(t, &fakeFetcher{})
	deps.Translator.SetLanguage("en")

	v := NewNotFoundView(deps)
	assert.Contains(t, v.homeBtn.Text, "Back to home")
}
