package widget

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the bar
type Styles struct {
	Bar          lipgloss.Style
	Tick         lipgloss.Style
	Line         lipgloss.Style
	Thumb        lipgloss.Style
	ThumbPressed lipgloss.Style
	Inactive     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Bar:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // light gray
		Tick:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Line:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // holo blue
		Thumb:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ThumbPressed: lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
		Inactive:     lipgloss.NewStyle().Faint(true),
	}
}

// SetStyles replaces the bar styles
func (b *Bar) SetStyles(s *Styles) {
	b.styles = s
}

// weightGlyph maps a stroke weight to a horizontal line glyph
func weightGlyph(w float64) rune {
	switch {
	case w <= 0:
		return ' '
	case w < 3:
		return '─'
	case w < 6:
		return '━'
	default:
		return '█'
	}
}

// thumbGlyph picks the thumb glyph for a radius; -1 is auto
func thumbGlyph(radius float64, pressed bool) rune {
	if radius >= 10 {
		return '⬤'
	}
	if pressed {
		return '◉'
	}
	return '●'
}

// tickRows is how many rows a tick extends above and below the bar
func (b *Bar) tickRows() int {
	rows := int(math.Round(b.tickHeight / 16))
	if rows > 2 {
		rows = 2
	}
	return rows
}

// TickColumns returns the cell column of every tick
func (b *Bar) TickColumns() []int {
	cols := make([]int, b.tickCount)
	for i := range cols {
		cols[i] = int(math.Round(b.TickX(i)))
	}
	return cols
}

// View renders the bar: tick rows, the bar row with the connecting line and
// thumbs, then the mirrored tick rows
func (b *Bar) View() string {
	ticks := b.TickColumns()
	onTick := make([]bool, b.width)
	for _, c := range ticks {
		if c >= 0 && c < b.width {
			onTick[c] = true
		}
	}

	tickRow := b.renderTickRow(onTick)
	rows := b.tickRows()

	var out []string
	for i := 0; i < rows; i++ {
		out = append(out, tickRow)
	}
	out = append(out, b.renderBarRow(onTick))
	for i := 0; i < rows; i++ {
		out = append(out, tickRow)
	}

	view := strings.Join(out, "\n")
	if !b.activated {
		return b.styles.Inactive.Render(view)
	}
	return view
}

func (b *Bar) renderTickRow(onTick []bool) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if onTick[x] && b.barWeight > 0 {
			sb.WriteString(b.styles.Tick.Render("│"))
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (b *Bar) renderBarRow(onTick []bool) string {
	leftCol := int(math.Round(b.thumbX[left]))
	rightCol := int(math.Round(b.thumbX[right]))
	barGlyph := string(weightGlyph(b.barWeight))
	lineGlyph := string(weightGlyph(b.lineWeight))

	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		switch {
		case x == leftCol || x == rightCol:
			pressed := (x == leftCol && b.pressed == left) || (x == rightCol && b.pressed == right)
			style := b.styles.Thumb
			if pressed {
				style = b.styles.ThumbPressed
			}
			sb.WriteString(style.Render(string(thumbGlyph(b.radius, pressed))))
		case x > leftCol && x < rightCol && b.lineWeight > 0:
			sb.WriteString(b.styles.Line.Render(lineGlyph))
		case x < int(b.leftX()) || x > int(b.rightX()):
			sb.WriteByte(' ')
		case onTick[x] && b.barWeight > 0:
			sb.WriteString(b.styles.Bar.Render("┼"))
		default:
			sb.WriteString(b.styles.Bar.Render(barGlyph))
		}
	}
	return sb.String()
}
