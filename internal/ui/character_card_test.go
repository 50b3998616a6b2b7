package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status model.Status
		want   color.NRGBA
	}{
		{"Alive", color.NRGBA{R: 0x55, G: 0xcc, B: 0x44, A: 0xff}},
		{"alive", color.NRGBA{R: 0x55, G: 0xcc, B: 0x44, A: 0xff}},
		{"Dead", color.NRGBA{R: 0xd6, G: 0x3d, B: 0x2e, A: 0xff}},
		{"DEAD", color.NRGBA{R: 0xd6, G: 0x3d, B: 0x2e, A: 0xff}},
		{"unknown", color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}},
		{"", color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusColor(tt.status), "status %q", tt.status)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#667eea")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseHexColor("667eea")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestDetailRows(t *testing.T) {
	tr := i18n.New(i18n.LangSpanish)

	rows := detailRows(rick, tr)
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r[0]
	}
	assert.Equal(t, []string{"ID", "Estado", "Especie", "Género", "Origen", "Ubicación"}, labels)
	assert.Equal(t, "1", rows[0][1])

	rows = detailRows(birdperson, tr)
	require.Len(t, rows, 7)
	assert.Equal(t, [2]string{"Tipo", "Bird-Person"}, rows[6])
}

func TestCharacterCard(t *testing.T) {
	testDeps(t, &fakeFetcher{})
	card := NewCharacterCard(rick, i18n.New(i18n.LangEnglish))

	assert.Equal(t, "Rick Sanchez", card.nameLabel.Text)
	assert.Equal(t, "Location: Citadel of Ricks", card.locationLabel.Text)
	assert.Equal(t, AvatarPlaceholder().Name(), card.Avatar().Name())

	res := avatarResource(rick, tinyPNG(t))
	card.SetAvatar(res)
	assert.Equal(t, res, card.Avatar())
}
