package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table output: the type name as a title row over a bordered two-column
// FIELD/VALUE table. Column widths are display widths, so wide characters
// in values line up correctly.

var tableHeader = []string{"FIELD", "VALUE"}

const (
	tlCorner = "╭"
	trCorner = "╮"
	blCorner = "╰"
	brCorner = "╯"
	hBar     = "─"
	vBar     = "│"
	topTee   = "┬"
	botTee   = "┴"
	leftTee  = "├"
	rightTee = "┤"
	cross    = "┼"
)

func writeTable(w io.Writer, d *Describer) error {
	if isNull(d.target) {
		_, err := io.WriteString(w, nullText+"\n")
		return err
	}
	entries := d.Entries()

	widths := []int{runewidth.StringWidth(tableHeader[0]), runewidth.StringWidth(tableHeader[1])}
	for _, e := range entries {
		if kw := runewidth.StringWidth(e.Key); kw > widths[0] {
			widths[0] = kw
		}
		if vw := runewidth.StringWidth(e.Value); vw > widths[1] {
			widths[1] = vw
		}
	}

	if err := drawTitle(w, typeName(d.target), widths); err != nil {
		return err
	}
	if err := drawRow(w, tableHeader[0], tableHeader[1], widths); err != nil {
		return err
	}
	if err := drawLine(w, widths, leftTee, cross, rightTee); err != nil {
		return err
	}
	for _, e := range entries {
		if err := drawRow(w, e.Key, e.Value, widths); err != nil {
			return err
		}
	}
	return drawLine(w, widths, blCorner, botTee, brCorner)
}

// drawTitle renders the full-width title cell and the transition line that
// introduces the column separators.
func drawTitle(w io.Writer, title string, widths []int) error {
	inner := widths[0] + widths[1] + 3 // one border between cells, one pad each side of it

	var sb strings.Builder
	sb.WriteString(tlCorner)
	sb.WriteString(strings.Repeat(hBar, inner+2))
	sb.WriteString(trCorner)
	if _, err := fmt.Fprintln(w, sb.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s %s\n", vBar, center(title, inner), vBar); err != nil {
		return err
	}
	return drawLine(w, widths, leftTee, topTee, rightTee)
}

func drawLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(hBar, widths[0]+2))
	sb.WriteString(mid)
	sb.WriteString(strings.Repeat(hBar, widths[1]+2))
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, key, value string, widths []int) error {
	_, err := fmt.Fprintf(w, "%s %s %s %s %s\n", vBar, padRight(key, widths[0]), vBar, padRight(value, widths[1]), vBar)
	return err
}

func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
