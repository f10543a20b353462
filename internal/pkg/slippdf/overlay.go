package slippdf

import (
	"bytes"
	"sort"

	"github.com/go-pdf/fpdf"
)

// RenderStatus is the per-field outcome of an overlay render. Skips are
// deliberate, observable outcomes, not errors.
type RenderStatus string

const (
	StatusRendered          RenderStatus = "rendered"
	StatusSkippedUnknown    RenderStatus = "skipped: unknown field"
	StatusSkippedEmptyValue RenderStatus = "skipped: empty value"
)

type FieldOutcome struct {
	Field  string
	Status RenderStatus
}

// RenderOverlay draws the given field values onto a blank Letter page at
// the catalog's coordinates and returns the page bytes plus one outcome
// per input field (in field-name order). Values for unknown fields and
// empty values are skipped.
func RenderOverlay(values map[string]string) ([]byte, []FieldOutcome, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	outcomes := make([]FieldOutcome, 0, len(names))
	for _, name := range names {
		text := values[name]
		if text == "" {
			outcomes = append(outcomes, FieldOutcome{Field: name, Status: StatusSkippedEmptyValue})
			continue
		}
		spec, ok := Catalog[name]
		if !ok {
			outcomes = append(outcomes, FieldOutcome{Field: name, Status: StatusSkippedUnknown})
			continue
		}

		doc.SetFont("Helvetica", "", spec.FontSize)

		// Vertically center within the box. The catalog's Y is measured
		// from the bottom of the page; fpdf's origin is top-left.
		baseline := spec.Y + (spec.H-spec.FontSize)/2 + 1
		y := pageHeight - baseline

		var x float64
		if spec.Align == AlignCenter {
			x = spec.X + spec.W/2 - doc.GetStringWidth(text)/2
		} else {
			x = spec.X + 2
		}
		doc.Text(x, y, text)

		outcomes = append(outcomes, FieldOutcome{Field: name, Status: StatusRendered})
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), outcomes, nil
}
