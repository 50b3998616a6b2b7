// Package export renders a character sheet as a PDF document.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
	"github.com/ytget/rickmorty/internal/platform"
)

// Layout in millimetres on an A4 portrait page.
const (
	FontFamily    = "Helvetica"
	TitleFontSize = 20
	BodyFontSize  = 12

	TitleY      = 20.0
	FirstLineY  = 40.0
	LineSpacing = 10.0
	LabelX      = 20.0
	ValueX      = 60.0

	Creator = "Rick and Morty App"
)

// Line is one labelled attribute of the sheet
type Line struct {
	Label string
	Value string
}

// Exporter writes character sheets
type Exporter struct {
	translator *i18n.Translator
	logger     *zap.Logger
	compress   bool
	now        func() time.Time
}

// NewExporter creates an exporter whose labels follow translator's language
func NewExporter(translator *i18n.Translator, logger *zap.Logger) *Exporter {
	if translator == nil {
		translator = i18n.New(i18n.DefaultLanguage)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		translator: translator,
		logger:     logger,
		compress:   true,
		now:        time.Now,
	}
}

// Lines returns the labelled attributes in sheet order. The sub-type is
// only included when it is set.
func (e *Exporter) Lines(c model.Character) []Line {
	t := e.translator
	lines := []Line{
		{t.Text(i18n.KeyFieldID), strconv.Itoa(c.ID)},
		{t.Text(i18n.KeyFieldStatus), c.Status.String()},
		{t.Text(i18n.KeyFieldSpecies), c.Species},
		{t.Text(i18n.KeyFieldGender), c.Gender},
		{t.Text(i18n.KeyFieldOrigin), c.Origin.Name},
		{t.Text(i18n.KeyFieldLocation), c.Location.Name},
	}
	if c.HasType() {
		lines = append(lines, Line{t.Text(i18n.KeyFieldType), c.Type})
	}
	return lines
}

// Write renders the sheet for c into w
func (e *Exporter) Write(w io.Writer, c model.Character) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetCreator(Creator, true)
	pdf.SetTitle(c.Name, true)
	pdf.SetCreationDate(e.now())
	pdf.AddPage()

	// Core fonts are cp1252; accented labels need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	pdf.SetFont(FontFamily, "", TitleFontSize)
	title := tr(c.Name)
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, TitleY, title)

	y := FirstLineY
	for _, line := range e.Lines(c) {
		pdf.SetFont(FontFamily, "B", BodyFontSize)
		pdf.Text(LabelX, y, tr(line.Label+":"))
		pdf.SetFont(FontFamily, "", BodyFontSize)
		pdf.Text(ValueX, y, tr(line.Value))
		y += LineSpacing
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// MaxDuplicates bounds the numbered variants Save tries when a sheet with
// the same name already exists.
const MaxDuplicates = 100

// ErrOutsideDir is returned when a file name would resolve outside the
// export directory.
var ErrOutsideDir = errors.New("export path escapes export directory")

// Save writes the sheet into dir using the character's file name and returns
// the full path of the written file. An existing sheet is kept: the new one
// gets a numbered name such as "Rick_Sanchez (1).pdf".
func (e *Exporter) Save(dir string, c model.Character) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, path, err := createUnique(dir, c.FileName())
	if err != nil {
		return "", err
	}

	if err := e.Write(f, c); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	if base := filepath.Base(path); base != c.FileName() {
		e.logger.Info("sheet already existed, saved under a numbered name",
			zap.String("wanted", c.FileName()),
			zap.String("saved", base))
	}
	e.logger.Info("character sheet exported",
		zap.Int("character_id", c.ID),
		zap.String("path", path))
	return path, nil
}

// createUnique creates name inside dir, adding " (n)" before the extension
// while the name is taken.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; n <= MaxDuplicates; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)
		if !withinDir(dir, path) {
			return nil, "", fmt.Errorf("%s: %w", candidate, ErrOutsideDir)
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}
		return f, path, nil
	}
	return nil, "", fmt.Errorf("create %s: %d numbered copies already exist", name, MaxDuplicates)
}

// withinDir reports whether path is a direct child of dir.
func withinDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && !filepath.IsAbs(rel) && filepath.Dir(rel) == "." && rel != ".."
}
