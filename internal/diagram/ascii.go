package diagram

import (
	"fmt"
	"strings"
)

// SectionData holds what the ASCII footing section needs. The package
// defines its own data type so it stays decoupled from the sizing
// packages.
type SectionData struct {
	// Footing dimensions
	WidthFt float64
	DepthIn float64

	// Supported element
	ColumnWidthIn float64 // column width, or wall thickness for strips
	IsStrip       bool

	Designation string
	SteelNote   string // e.g. `#6 @ 12" o.c. E.W.`
}

// FootingSection renders an ASCII cross-section of a footing: column
// or wall stub on top, footing block below, dimensions annotated.
func FootingSection(d SectionData) string {
	const canvas = 49 // odd, so the column centers

	var sb strings.Builder

	colChars := scale(d.ColumnWidthIn/12, d.WidthFt, canvas)
	if colChars < 3 {
		colChars = 3
	}
	if colChars%2 == 0 {
		colChars++
	}
	colPad := (canvas - colChars) / 2

	support := "COLUMN"
	if d.IsStrip {
		support = "WALL"
	}

	// Column stub, two rows tall
	stub := strings.Repeat(" ", colPad) + "|" + strings.Repeat(" ", colChars-2) + "|"
	sb.WriteString(center(support, canvas) + "\n")
	sb.WriteString(stub + "\n")
	sb.WriteString(stub + "\n")

	// Top of footing with the stub opening
	top := strings.Repeat("=", colPad) + "+" + strings.Repeat(" ", colChars-2) + "+" + strings.Repeat("=", canvas-colPad-colChars)
	sb.WriteString(top + "\n")

	// Footing body
	body := "|" + strings.Repeat(" ", canvas-2) + "|"
	label := fmt.Sprintf("%s  t=%.0f\"", d.Designation, d.DepthIn)
	sb.WriteString("|" + centerIn(label, canvas-2) + "|\n")
	if d.SteelNote != "" {
		sb.WriteString("|" + centerIn(d.SteelNote, canvas-2) + "|\n")
	} else {
		sb.WriteString(body + "\n")
	}
	sb.WriteString("+" + strings.Repeat("-", canvas-2) + "+\n")

	// Width dimension line
	dim := fmt.Sprintf("%.1f ft", d.WidthFt)
	if d.IsStrip {
		dim += " (per LF of wall)"
	}
	sb.WriteString("|<" + strings.Repeat("-", canvas-4) + ">|\n")
	sb.WriteString(center(dim, canvas) + "\n")

	return sb.String()
}

// scale maps a physical width to character cells on the canvas.
func scale(value, full float64, canvas int) int {
	if full <= 0 {
		return 0
	}
	return int(value / full * float64(canvas))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func centerIn(s string, width int) string {
	if len(s) > width {
		s = s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
