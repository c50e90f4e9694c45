package views

import (
	"fmt"
	"strings"
)

const (
	padX = 2
	padY = 1
	// Title line plus the blank line under it
	titleLines = 2
)

// BarOrigin returns the screen cell of the bar's top-left corner
func BarOrigin() (x, y int) {
	return padX, padY + titleLines
}

// ContentWidth returns the width left for the bar in a window of w cells
func ContentWidth(w int) int {
	return w - 2*padX
}

// Field is one of the two index fields
type Field struct {
	Label   string
	Text    string
	Editing bool
	// Input is the rendered text input, used while Editing
	Input string
}

// Param is one parameter slider row
type Param struct {
	Label   string
	Focused bool
}

// ViewState holds everything the renderer draws
type ViewState struct {
	Bar         string
	BarActive   bool
	Left, Right Field
	Params      []Param
	Status      string
	StatusIsErr bool
	Help        string
}

// Renderer turns a ViewState into the screen
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render draws the whole screen
func (r *Renderer) Render(s ViewState) string {
	var b strings.Builder

	title := "Range"
	if !s.BarActive {
		title += r.styles.Dim.Render(" (inactive)")
	}
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(s.Bar)
	b.WriteString("\n\n")

	b.WriteString(r.renderField(s.Left))
	b.WriteString("   ")
	b.WriteString(r.renderField(s.Right))
	b.WriteString("\n\n")

	for _, p := range s.Params {
		if p.Focused {
			b.WriteString(r.styles.Focused.Render("▸ " + p.Label))
		} else {
			b.WriteString(r.styles.Param.Render("  " + p.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.Status != "" {
		style := r.styles.Status
		if s.StatusIsErr {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(s.Status))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(s.Help))

	return r.styles.Main.Render(b.String())
}

func (r *Renderer) renderField(f Field) string {
	if f.Editing {
		return r.styles.FieldActive.Render(f.Label+": ") + f.Input
	}
	return r.styles.Field.Render(fmt.Sprintf("%s: %s", f.Label, f.Text))
}
