// Package slippdf renders text overlays for the Time Exception Slip
// template and composes filled pages into a single document.
//
// The template is a fixed single-page 612x792pt form. Field geometry below
// was extracted from the template's form-field annotations; the overlay
// draws text at those positions and the interactive fields themselves are
// stripped during composition.
package slippdf

// Alignment of text within a field's bounding box.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// FieldSpec places one named field on the page. X/Y are the lower-left
// corner in PDF points (origin bottom-left).
type FieldSpec struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	FontSize float64
	Align    Alignment
}

const (
	pageWidth  = 612.0
	pageHeight = 792.0
)

// Catalog is the full field map of the slip template. Immutable; loaded
// once per process.
var Catalog = map[string]FieldSpec{
	"Employee Name": {99.00, 711.72, 201.60, 16.92, 11, AlignLeft},
	"Dept":          {345.84, 711.72, 45.60, 16.92, 11, AlignCenter},
	"Ending Date":   {459.24, 711.72, 104.76, 16.92, 10, AlignLeft},
	"Employee":      {76.32, 681.36, 65.52, 16.92, 10, AlignLeft},

	// Worked-date columns (rows 1-5)
	"Dates 1_2": {18.48, 365.16, 80.76, 16.92, 7, AlignLeft},
	"Dates 2_2": {18.48, 347.04, 80.76, 16.92, 7, AlignLeft},
	"Dates 3_2": {18.48, 328.92, 80.76, 16.92, 7, AlignLeft},
	"Dates 4_2": {18.48, 310.80, 80.76, 16.92, 7, AlignLeft},
	"Dates 5_2": {18.48, 292.68, 80.76, 16.92, 7, AlignLeft},

	// OT 1.0 (rows 1-5 + total row 6)
	"OT1": {143.64, 366.78, 18.33, 15.30, 7, AlignCenter},
	"OT2": {143.64, 348.66, 18.33, 15.30, 7, AlignCenter},
	"OT3": {143.64, 330.54, 18.33, 15.30, 7, AlignCenter},
	"OT4": {143.64, 312.42, 18.33, 15.30, 7, AlignCenter},
	"OT5": {143.64, 294.30, 18.33, 15.30, 7, AlignCenter},
	"OT6": {143.64, 275.58, 18.33, 15.30, 7, AlignCenter},

	// OT 1.5 (rows 1-5 + total row 6)
	"OTH1": {166.31, 366.78, 18.33, 15.30, 7, AlignCenter},
	"OTH2": {166.31, 348.66, 18.33, 15.30, 7, AlignCenter},
	"OTH3": {166.31, 330.54, 18.33, 15.30, 7, AlignCenter},
	"OTH4": {166.31, 312.42, 18.33, 15.30, 7, AlignCenter},
	"OTH5": {166.31, 294.30, 18.33, 15.30, 7, AlignCenter},
	"OTH6": {166.31, 275.58, 18.33, 15.30, 7, AlignCenter},

	// CTE 1.0 (rows 1-5 + total row 6)
	"CTE1": {189.05, 366.78, 18.33, 15.30, 7, AlignCenter},
	"CTE2": {189.05, 348.66, 18.33, 15.30, 7, AlignCenter},
	"CTE3": {189.05, 330.54, 18.33, 15.30, 7, AlignCenter},
	"CTE4": {189.05, 312.42, 18.33, 15.30, 7, AlignCenter},
	"CTE5": {189.05, 294.30, 18.33, 15.30, 7, AlignCenter},
	"CTE6": {189.05, 275.58, 18.33, 15.30, 7, AlignCenter},

	// CTE 1.5 (rows 1-5 + total row 6)
	"CTEH1": {211.98, 366.78, 18.33, 15.30, 7, AlignCenter},
	"CTEH2": {211.98, 348.66, 18.33, 15.30, 7, AlignCenter},
	"CTEH3": {211.98, 330.54, 18.33, 15.30, 7, AlignCenter},
	"CTEH4": {211.98, 312.42, 18.33, 15.30, 7, AlignCenter},
	"CTEH5": {211.98, 294.30, 18.33, 15.30, 7, AlignCenter},
	"CTEH6": {211.98, 275.58, 18.33, 15.30, 7, AlignCenter},

	// Grand total hours
	"HTOT1": {302.43, 275.58, 18.33, 15.30, 7, AlignCenter},
}

// RowFields maps a column key to its five row fields, top to bottom. Rows
// 1 and 2 carry week 1 and week 2 of the pay period; rows 3-5 exist on the
// template but are unused by the bi-weekly flow.
var RowFields = map[string][5]string{
	"dates": {"Dates 1_2", "Dates 2_2", "Dates 3_2", "Dates 4_2", "Dates 5_2"},
	"ot10":  {"OT1", "OT2", "OT3", "OT4", "OT5"},
	"ot15":  {"OTH1", "OTH2", "OTH3", "OTH4", "OTH5"},
	"cte10": {"CTE1", "CTE2", "CTE3", "CTE4", "CTE5"},
	"cte15": {"CTEH1", "CTEH2", "CTEH3", "CTEH4", "CTEH5"},
}

// TotalFields maps a category key to its two-week total field (row 6).
var TotalFields = map[string]string{
	"ot10":  "OT6",
	"ot15":  "OTH6",
	"cte10": "CTE6",
	"cte15": "CTEH6",
}

// GrandTotalField holds the sum of all hours on the slip.
const GrandTotalField = "HTOT1"
