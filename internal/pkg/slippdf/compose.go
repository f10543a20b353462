package slippdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var ErrNoPages = errors.New("no pages to merge")

// Template is the slip form asset: one fixed single-page PDF, read once at
// startup and never mutated. Every composed slip stamps a fresh overlay
// onto a fresh copy of this page.
type Template struct {
	raw []byte
}

func LoadTemplate(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slip template: %w", err)
	}
	return NewTemplate(raw)
}

func NewTemplate(raw []byte) (*Template, error) {
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		return nil, errors.New("slip template is not a PDF")
	}
	return &Template{raw: raw}, nil
}

// Composer merges rendered overlays onto the template page and
// concatenates composed pages into one document.
type Composer struct {
	template *Template
	logger   *slog.Logger
}

func NewComposer(template *Template, logger *slog.Logger) *Composer {
	return &Composer{template: template, logger: logger}
}

func pdfConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Compose stamps the overlay onto a fresh copy of the template page and
// strips the page's interactive form-field annotations. Stripping prevents
// field-name collisions once many copies of the same form are concatenated
// into a single document.
func (c *Composer) Compose(overlay []byte) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "timeslip-compose-*")
	if err != nil {
		return nil, fmt.Errorf("stage overlay: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	overlayPath := filepath.Join(tmpDir, uuid.NewString()+".pdf")
	if err := os.WriteFile(overlayPath, overlay, 0o600); err != nil {
		return nil, fmt.Errorf("stage overlay: %w", err)
	}

	conf := pdfConf()
	wm, err := api.PDFWatermark(overlayPath, "sc:1 abs, pos:c, rot:0", true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("build overlay stamp: %w", err)
	}

	var stamped bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(c.template.raw), &stamped, nil, wm, conf); err != nil {
		return nil, fmt.Errorf("stamp overlay onto template: %w", err)
	}

	var out bytes.Buffer
	if err := api.RemoveAnnotations(bytes.NewReader(stamped.Bytes()), &out, nil, nil, nil, conf); err != nil {
		// A template without interactive fields has nothing to strip.
		// Anything else keeps the stamped page rather than losing it, but
		// leaves the form fields live in the merged document.
		if c.logger != nil {
			c.logger.Warn("annotation strip failed, keeping stamped page",
				slog.Any("error", err),
			)
		}
		return stamped.Bytes(), nil
	}
	return out.Bytes(), nil
}

// MergePages concatenates already-composed single pages into one document,
// preserving the given order.
func (c *Composer) MergePages(pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	readers := make([]io.ReadSeeker, len(pages))
	for i, page := range pages {
		readers[i] = bytes.NewReader(page)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, pdfConf()); err != nil {
		return nil, fmt.Errorf("merge slip pages: %w", err)
	}
	return buf.Bytes(), nil
}
