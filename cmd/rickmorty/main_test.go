package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/model"
)

var characters = []model.Character{
	{ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human", Gender: "Male",
		Origin: model.Location{Name: "Earth (C-137)"}, Location: model.Location{Name: "Citadel of Ricks"}},
	{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human", Gender: "Male",
		Origin: model.Location{Name: "unknown"}, Location: model.Location{Name: "Citadel of Ricks"}},
	{ID: 47, Name: "Birdperson", Status: "Dead", Species: "Alien", Type: "Bird-Person", Gender: "Male",
		Origin: model.Location{Name: "Bird World"}, Location: model.Location{Name: "Planet Squanch"}},
}

// newAPIServer serves the characters endpoint like the backing API does.
func newAPIServer(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/characters", func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.URL.Query().Get("name"))
		var out []model.Character
		for _, c := range characters {
			if strings.Contains(strings.ToLower(c.Name), name) {
				out = append(out, c)
			}
		}
		if out == nil {
			out = []model.Character{}
		}
		_ = json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("/api/characters/", func(w http.ResponseWriter, r *http.Request) {
		for _, c := range characters {
			if r.URL.Path == "/api/characters/"+strconv.Itoa(c.ID) {
				_ = json.NewEncoder(w).Encode(c)
				return
			}
		}
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + "/api/characters"
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{config.EnvAPIURL, config.EnvLanguage, config.EnvExportDir, config.EnvTimeout, config.EnvConfigFile} {
		t.Setenv(env, "")
	}
	if c == nil {
		c = &cli{}
	}
	c.logger = zap.NewNop()
	if c.runGUI == nil {
		c.runGUI = func(config.Defaults, *zap.Logger) error { return errors.New("gui not available in tests") }
	}

	cmd := newRootCommand(c)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	url := newAPIServer(t)

	out, err := execute(t, nil, "list", "--api-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Rick Sanchez")
	assert.Contains(t, out, "Morty Smith")
	assert.Contains(t, out, "● Dead")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestGetCommand(t *testing.T) {
	url := newAPIServer(t)

	out, err := execute(t, nil, "get", "47", "--api-url", url, "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Birdperson")
	assert.Contains(t, out, "Species:")
	assert.Contains(t, out, "Type:")
	assert.Contains(t, out, "Bird-Person")
}

func TestGetCommand_NotFound(t *testing.T) {
	url := newAPIServer(t)

	_, err := execute(t, nil, "get", "999", "--api-url", url)
	require.Error(t, err)
	assert.Equal(t, "Personaje no encontrado.", err.Error())
	assert.True(t, errors.Is(err, api.ErrNotFound))
}

func TestGetCommand_LeadingInteger(t *testing.T) {
	url := newAPIServer(t)

	out, err := execute(t, nil, "get", "47abc", "--api-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Birdperson")

	out, err = execute(t, nil, "get", " 2 ", "--api-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Morty Smith")
}

func TestGetCommand_IDWithoutDigits(t *testing.T) {
	url := newAPIServer(t)

	_, err := execute(t, nil, "get", "rick", "--api-url", url)
	require.Error(t, err)
	assert.Equal(t, "Personaje no encontrado.", err.Error())
	assert.True(t, errors.Is(err, api.ErrNotFound))
}

func TestSearchCommand(t *testing.T) {
	url := newAPIServer(t)

	out, err := execute(t, nil, "search", "smith", "--api-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Morty Smith")
	assert.NotContains(t, out, "Rick Sanchez")

	_, err = execute(t, nil, "search", "jerry", "--api-url", url)
	require.Error(t, err)
	assert.Equal(t, "No se encontró ningún personaje con ese nombre.", err.Error())
}

func TestExportCommand(t *testing.T) {
	url := newAPIServer(t)
	dir := t.TempDir()

	out, err := execute(t, nil, "export", "rick", "--api-url", url, "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "Rick_Sanchez.pdf")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = execute(t, nil, "export", "47", "--by", "id", "--api-url", url, "--out", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Birdperson.pdf"))
}

func TestExportCommand_Open(t *testing.T) {
	url := newAPIServer(t)
	dir := t.TempDir()

	var opened []string
	c := &cli{openFile: func(path string) error {
		opened = append(opened, path)
		return nil
	}}
	_, err := execute(t, c, "export", "rick", "--api-url", url, "--out", dir)
	require.NoError(t, err)
	assert.Empty(t, opened)

	_, err = execute(t, c, "export", "rick", "--api-url", url, "--out", dir, "--open")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Rick_Sanchez (1).pdf")}, opened)

	c.openFile = func(string) error { return errors.New("no viewer") }
	_, err = execute(t, c, "export", "rick", "--api-url", url, "--out", dir, "--open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no viewer")
}

func TestExportCommand_BadMode(t *testing.T) {
	_, err := execute(t, nil, "export", "rick", "--by", "species")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--by")
}

func TestExportCommand_IDWithoutDigits(t *testing.T) {
	url := newAPIServer(t)

	_, err := execute(t, nil, "export", "rick", "--by", "id", "--api-url", url, "--out", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, "Personaje no encontrado.", err.Error())
}

func TestGlobalFlagValidation(t *testing.T) {
	_, err := execute(t, nil, "list", "--api-url", "ftp://example.com")
	assert.Error(t, err)

	_, err = execute(t, nil, "list", "--lang", "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestRootRunsGUI(t *testing.T) {
	var got config.Defaults
	c := &cli{runGUI: func(d config.Defaults, _ *zap.Logger) error {
		got = d
		return nil
	}}

	_, err := execute(t, c, "--api-url", "https://rickandmortyapi.com/api/character", "--lang", "pt")
	require.NoError(t, err)
	assert.Equal(t, "https://rickandmortyapi.com/api/character", got.APIURL)
	assert.Equal(t, "pt", got.Language)
}

func TestConfigFile(t *testing.T) {
	url := newAPIServer(t)
	path := filepath.Join(t.TempDir(), "rickmorty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: "+url+"\nlanguage: en\n"), 0o644))

	_, err := execute(t, nil, "get", "999", "--config", path)
	require.Error(t, err)
	assert.Equal(t, "Character not found.", err.Error())
}
