package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/model"
)

func TestListView_LoadSuccess(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick, morty}}
	v := NewListView(testDeps(t, f))

	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, 1, v.TotalPages())
	assert.Empty(t, v.Characters())

	v.Start()

	assert.Equal(t, 1, f.listCalls)
	assert.False(t, v.Loading())
	assert.Empty(t, v.Err())
	assert.Equal(t, []model.Character{rick, morty}, v.Characters())
	assert.Equal(t, "Página 1 de 1", v.pageLabel.Text)
	require.Len(t, v.grid.Objects, 2)
	assert.Equal(t, rick, v.grid.Objects[0].(*CharacterCard).Character())
	assert.True(t, v.prevBtn.Disabled())
	assert.True(t, v.nextBtn.Disabled())
}

func TestListView_LoadFailure(t *testing.T) {
	f := &fakeFetcher{listErr: &api.Error{Kind: api.KindServer, Status: 500}}
	v := NewListView(testDeps(t, f))

	v.Load(1)

	assert.False(t, v.Loading())
	assert.Equal(t, "Error en el servidor. Intenta más tarde.", v.Err())
	assert.Empty(t, v.Characters())
	assert.True(t, v.errorBox.Visible())
	assert.Equal(t, v.Err(), v.errorText.Text)
}

func TestListView_RetryClearsError(t *testing.T) {
	f := &fakeFetcher{listErr: &api.Error{Kind: api.KindConnection}}
	v := NewListView(testDeps(t, f))

	v.Start()
	assert.Equal(t, "No se pudo conectar con el servidor. Verifica tu conexión.", v.Err())

	f.listErr = nil
	f.list = []model.Character{rick}
	v.Retry()

	assert.Equal(t, 2, f.listCalls)
	assert.Empty(t, v.Err())
	assert.False(t, v.errorBox.Visible())
	assert.Len(t, v.Characters(), 1)
	assert.Equal(t, 1, v.CurrentPage())
}

func TestListView_PagingIsNoOpOnSinglePage(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick}}
	v := NewListView(testDeps(t, f))
	v.Start()

	v.NextPage()
	v.PreviousPage()
	v.onGesture(GestureSwipeLeft)
	v.onGesture(GestureSwipeRight)

	assert.Equal(t, 1, f.listCalls)
	assert.Equal(t, 1, v.CurrentPage())
}

func TestListView_SwipeDownReloads(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick}}
	v := NewListView(testDeps(t, f))
	v.Start()

	v.onGesture(GestureSwipeDown)

	assert.Equal(t, 2, f.listCalls)
	assert.Equal(t, 1, v.CurrentPage())
}

func TestListView_PagingWithinBounds(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick}}
	v := NewListView(testDeps(t, f))

	// A multi-page state is only reachable from inside the package.
	v.totalPages = 3
	v.NextPage()
	assert.Equal(t, 2, v.CurrentPage())
	assert.Equal(t, 1, v.TotalPages(), "a successful load resets the page count")

	v.currentPage = 2
	v.PreviousPage()
	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, 2, f.listCalls)
}

func TestListView_Avatars(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick, morty, birdperson}, image: tinyPNG(t)}
	v := NewListView(testDeps(t, f))
	v.Start()

	// birdperson has no image URL
	assert.Equal(t, 2, f.imageCalls)
	cards := v.grid.Objects
	assert.Equal(t, "avatar-1", cards[0].(*CharacterCard).Avatar().Name())
	assert.Equal(t, "avatar-2", cards[1].(*CharacterCard).Avatar().Name())
	assert.Equal(t, AvatarPlaceholder().Name(), cards[2].(*CharacterCard).Avatar().Name())
}

func TestListView_AvatarFailureKeepsPlaceholder(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick}}
	v := NewListView(testDeps(t, f))
	v.Start()

	assert.Equal(t, 1, f.imageCalls)
	assert.Equal(t, AvatarPlaceholder().Name(), v.grid.Objects[0].(*CharacterCard).Avatar().Name())
	assert.Empty(t, v.Err())
}

func TestListView_StaleResultDropped(t *testing.T) {
	f := &fakeFetcher{list: []model.Character{rick}}
	deps := testDeps(t, f)

	var pending []func()
	deps.dispatch.main = func(fn func()) { pending = append(pending, fn) }
	v := NewListView(deps)

	v.Load(1)
	f.list = []model.Character{morty}
	v.Load(1)
	require.Len(t, pending, 2)

	pending[1]()
	pending[0]()

	assert.Equal(t, []model.Character{morty}, v.Characters())
}
