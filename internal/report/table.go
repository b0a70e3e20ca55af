package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCell bounds a column so one long output does not stretch the report.
const maxCell = 40

func computeWidths(rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = min(w, maxCell)
			}
		}
	}
	return widths
}

func writeTable(w io.Writer, rows [][]string, sum Summary, bordered bool) error {
	widths := computeWidths(rows)
	if bordered {
		if err := drawHLine(w, widths); err != nil {
			return err
		}
		if err := drawBorderedRow(w, header, widths); err != nil {
			return err
		}
		if err := drawHLine(w, widths); err != nil {
			return err
		}
		for _, row := range rows {
			if err := drawBorderedRow(w, row, widths); err != nil {
				return err
			}
		}
		if err := drawHLine(w, widths); err != nil {
			return err
		}
	} else {
		if err := writePlainRow(w, header, widths); err != nil {
			return err
		}
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writePlainRow(w, row, widths); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, sum)
	return err
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatCell(cellAt(cells, i), width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatCell(cellAt(cells, i), width, aligns[i]))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func formatCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
