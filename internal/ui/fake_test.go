package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
)

var errNoImage = errors.New("no image")

// fakeFetcher records calls and returns canned results.
type fakeFetcher struct {
	mu sync.Mutex

	list    []model.Character
	listErr error

	character model.Character
	getErr    error

	results   []model.Character
	searchErr error

	image    []byte
	imageErr error

	listCalls  int
	gotIDs     []int
	gotNames   []string
	imageCalls int
}

var _ api.Fetcher = (*fakeFetcher)(nil)

func (f *fakeFetcher) ListCharacters(context.Context) ([]model.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.list, f.listErr
}

func (f *fakeFetcher) GetCharacter(_ context.Context, id int) (model.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotIDs = append(f.gotIDs, id)
	return f.character, f.getErr
}

func (f *fakeFetcher) SearchByName(_ context.Context, name string) ([]model.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotNames = append(f.gotNames, name)
	return f.results, f.searchErr
}

func (f *fakeFetcher) FetchImage(context.Context, string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageCalls++
	if f.image == nil && f.imageErr == nil {
		return nil, errNoImage
	}
	return f.image, f.imageErr
}

func testDeps(t *testing.T, f *fakeFetcher) Deps {
	t.Helper()
	test.NewApp()
	return Deps{
		Fetcher:    f,
		Translator: i18n.New(i18n.LangSpanish),
		Logger:     zaptest.NewLogger(t),
		Mobile:     &MobileUI{isMobile: func() bool { return false }},
		dispatch:   inline(),
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var (
	rick = model.Character{
		ID: 1, Name: "Rick Sanchez", Status: model.StatusAlive, Species: "Human", Gender: "Male",
		Origin:   model.Location{Name: "Earth (C-137)"},
		Location: model.Location{Name: "Citadel of Ricks"},
		Image:    "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
	}
	morty = model.Character{
		ID: 2, Name: "Morty Smith", Status: model.StatusAlive, Species: "Human", Gender: "Male",
		Origin:   model.Location{Name: "unknown"},
		Location: model.Location{Name: "Citadel of Ricks"},
		Image:    "https://rickandmortyapi.com/api/character/avatar/2.jpeg",
	}
	birdperson = model.Character{
		ID: 47, Name: "Birdperson", Status: model.StatusDead, Species: "Alien", Type: "Bird-Person", Gender: "Male",
		Origin:   model.Location{Name: "Bird World"},
		Location: model.Location{Name: "Planet Squanch"},
	}
)
