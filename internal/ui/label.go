package ui

// Label is a display surface the view reads back when it renders
type Label struct {
	text string
}

// SetText replaces the label text
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text
func (l *Label) Text() string {
	return l.text
}
