package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

const reset = termenv.CSI + termenv.ResetSeq + "m"

var shadowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

// Place renders fg on top of bg with its top left corner at x, y.
// Both are treated as blocks of possibly styled lines.
func Place(x, y int, fg, bg string, shadow bool) string {
	if shadow {
		fg = withShadow(fg)
	}
	fgLines, fgWidth := lines(fg)
	bgLines, bgWidth := lines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}
	x = clamp(x, 0, max(0, bgWidth-fgWidth))
	y = clamp(y, 0, max(0, bgHeight-fgHeight))

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
			b.WriteString(reset)
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		bgLineWidth := ansi.PrintableRuneWidth(bgLine)
		if pos < bgLineWidth {
			b.WriteString(reset)
			b.WriteString(charmansi.TruncateLeft(bgLine, pos, ""))
		}
	}
	return b.String()
}

func withShadow(fg string) string {
	fgLines, fgWidth := lines(fg)
	shadowChar := shadowStyle.Render("░")
	var b strings.Builder
	for i, line := range fgLines {
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", fgWidth-ansi.PrintableRuneWidth(line)))
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(shadowChar)
		}
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	b.WriteString(strings.Repeat(shadowChar, fgWidth))
	return b.String()
}

func lines(s string) ([]string, int) {
	result := strings.Split(s, "\n")
	width := 0
	for _, l := range result {
		width = max(width, ansi.PrintableRuneWidth(l))
	}
	return result, width
}

func clamp(v, lower, upper int) int {
	return min(max(v, lower), upper)
}
