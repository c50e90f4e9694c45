package widget

import (
	"errors"
	"fmt"
	"log"
	"math"

	"rangebar/internal/domain"
)

// ErrInvalidArgument is returned by setters that refuse their input
var ErrInvalidArgument = errors.New("invalid argument")

const (
	noThumb = -1
	left    = 0
	right   = 1

	// Width used until the host reports one
	defaultWidth = 40
	// Cells reserved on each side so the end thumbs fit
	margin = 1
)

// Bar is a character-cell range bar with two thumbs snapping to ticks
type Bar struct {
	tickCount  int
	sel        domain.Indices
	tickHeight float64
	barWeight  float64
	lineWeight float64
	radius     float64
	width      int
	activated  bool

	// Thumb x positions in cells; they only leave tick positions while dragged
	thumbX  [2]float64
	pressed int
	onDrag  func(left, right int)
	styles  *Styles
}

// New creates a bar with the default parameters, selecting every tick
func New() *Bar {
	b := &Bar{
		tickCount:  domain.DefaultTickCount,
		sel:        domain.Indices{Left: 0, Right: domain.DefaultTickCount - 1},
		tickHeight: domain.DefaultTickHeight,
		barWeight:  domain.DefaultBarWeight,
		lineWeight: domain.DefaultConnectingLineWeight,
		radius:     domain.DefaultThumbRadius,
		width:      defaultWidth,
		activated:  true,
		pressed:    noThumb,
		styles:     NewStyles(),
	}
	b.placeThumbs()
	return b
}

// OnDrag sets the callback fired when a drag moves a thumb to another tick.
// It replaces any previous callback.
func (b *Bar) OnDrag(fn func(left, right int)) {
	b.onDrag = fn
}

// SetTickCount changes the number of ticks. Counts below two or above
// MaxTickCount are refused.
// If the current indices no longer fit, the bar selects every tick.
func (b *Bar) SetTickCount(n int) error {
	if n < 2 {
		log.Printf("widget: tickCount %d less than 2; invalid tickCount", n)
		return fmt.Errorf("%w: tickCount %d less than 2", ErrInvalidArgument, n)
	}
	if n > domain.MaxTickCount {
		log.Printf("widget: tickCount %d above %d; invalid tickCount", n, domain.MaxTickCount)
		return fmt.Errorf("%w: tickCount %d above %d", ErrInvalidArgument, n, domain.MaxTickCount)
	}
	b.tickCount = n
	if !b.sel.Within(n) {
		b.sel = domain.Indices{Left: 0, Right: n - 1}
	}
	b.placeThumbs()
	return nil
}

// SetThumbIndices moves both thumbs. Programmatic moves never fire OnDrag.
func (b *Bar) SetThumbIndices(l, r int) error {
	if l < 0 || l >= b.tickCount || r < 0 || r >= b.tickCount {
		log.Printf("widget: thumb index out of bounds [%d, %d] for %d ticks", l, r, b.tickCount)
		return fmt.Errorf("%w: thumb index [%d, %d] outside 0..%d", ErrInvalidArgument, l, r, b.tickCount-1)
	}
	b.sel = domain.Indices{Left: l, Right: r}
	b.placeThumbs()
	return nil
}

// SetTickHeight sets the tick height; negative values clamp to zero
func (b *Bar) SetTickHeight(v float64) { b.tickHeight = math.Max(0, v) }

// SetBarWeight sets the bar line weight; negative values clamp to zero
func (b *Bar) SetBarWeight(v float64) { b.barWeight = math.Max(0, v) }

// SetConnectingLineWeight sets the weight of the line between the thumbs;
// negative values clamp to zero
func (b *Bar) SetConnectingLineWeight(v float64) { b.lineWeight = math.Max(0, v) }

// SetThumbRadius sets the thumb radius. Any negative value means auto.
func (b *Bar) SetThumbRadius(v float64) {
	if v < 0 {
		v = domain.AutoThumbRadius
	}
	b.radius = v
}

// SetWidth resizes the bar to w cells
func (b *Bar) SetWidth(w int) {
	if w < 2*margin+2 {
		w = 2*margin + 2
	}
	b.width = w
	b.placeThumbs()
}

// SetActivated enables or disables drag input
func (b *Bar) SetActivated(on bool) {
	b.activated = on
	if !on {
		b.pressed = noThumb
		b.placeThumbs()
	}
}

// Activated reports whether drag input is accepted
func (b *Bar) Activated() bool { return b.activated }

// LeftIndex returns the committed left index
func (b *Bar) LeftIndex() int { return b.sel.Left }

// RightIndex returns the committed right index
func (b *Bar) RightIndex() int { return b.sel.Right }

// CurrentIndices returns both committed indices
func (b *Bar) CurrentIndices() (int, int) { return b.sel.Left, b.sel.Right }

// TickCount returns the number of ticks
func (b *Bar) TickCount() int { return b.tickCount }

// TickHeight returns the tick height
func (b *Bar) TickHeight() float64 { return b.tickHeight }

// BarWeight returns the bar line weight
func (b *Bar) BarWeight() float64 { return b.barWeight }

// ConnectingLineWeight returns the connecting line weight
func (b *Bar) ConnectingLineWeight() float64 { return b.lineWeight }

// ThumbRadius returns the thumb radius, -1 for auto
func (b *Bar) ThumbRadius() float64 { return b.radius }

// Width returns the bar width in cells
func (b *Bar) Width() int { return b.width }

// Dragging reports whether a thumb is pressed
func (b *Bar) Dragging() bool { return b.pressed != noThumb }

// Geometry //////////////////////////////////////////////////////////////////

func (b *Bar) leftX() float64  { return margin }
func (b *Bar) rightX() float64 { return float64(b.width - 1 - margin) }

func (b *Bar) tickDistance() float64 {
	return (b.rightX() - b.leftX()) / float64(b.tickCount-1)
}

// TickX returns the cell column of tick i
func (b *Bar) TickX(i int) float64 {
	return b.leftX() + float64(i)*b.tickDistance()
}

// NearestTick returns the index of the tick closest to column x
func (b *Bar) NearestTick(x float64) int {
	i := int((x - b.leftX() + b.tickDistance()/2) / b.tickDistance())
	if i < 0 {
		return 0
	}
	if i > b.tickCount-1 {
		return b.tickCount - 1
	}
	return i
}

// targetRadius is how far from a thumb, in cells, a press still grabs it
func (b *Bar) targetRadius() float64 {
	if b.radius > 0 {
		return math.Max(1, b.radius/4)
	}
	return 1
}

func (b *Bar) placeThumbs() {
	if b.pressed != left {
		b.thumbX[left] = b.TickX(b.sel.Left)
	}
	if b.pressed != right {
		b.thumbX[right] = b.TickX(b.sel.Right)
	}
}

// Drag decoding ///////////////////////////////////////////////////////////////

// Press grabs the left thumb if x is on it, otherwise the right one
func (b *Bar) Press(x float64) bool {
	if !b.activated || b.pressed != noThumb {
		return false
	}
	switch {
	case math.Abs(x-b.thumbX[left]) <= b.targetRadius():
		b.pressed = left
	case math.Abs(x-b.thumbX[right]) <= b.targetRadius():
		b.pressed = right
	default:
		return false
	}
	return true
}

// Move drags the pressed thumb to x. Positions off the bar are ignored.
func (b *Bar) Move(x float64) {
	if !b.activated || b.pressed == noThumb {
		return
	}
	if x < b.leftX() || x > b.rightX() {
		return
	}
	b.thumbX[b.pressed] = x

	// Thumbs that cross trade roles
	if b.thumbX[left] > b.thumbX[right] {
		b.thumbX[left], b.thumbX[right] = b.thumbX[right], b.thumbX[left]
		b.pressed = 1 - b.pressed
	}

	b.report()
}

// Release drops the pressed thumb onto the nearest tick. A release with no
// thumb pressed is a tap: the closer thumb jumps to x.
func (b *Bar) Release(x float64) {
	if !b.activated {
		return
	}
	if b.pressed != noThumb {
		b.pressed = noThumb
		b.placeThumbs()
		return
	}

	if x < b.leftX() {
		x = b.leftX()
	}
	if x > b.rightX() {
		x = b.rightX()
	}
	if math.Abs(b.thumbX[left]-x) < math.Abs(b.thumbX[right]-x) {
		b.thumbX[left] = x
	} else {
		b.thumbX[right] = x
	}
	b.report()
	b.placeThumbs()
}

// report commits the ticks nearest to the thumbs and fires OnDrag on change
func (b *Bar) report() {
	next := domain.Indices{
		Left:  b.NearestTick(b.thumbX[left]),
		Right: b.NearestTick(b.thumbX[right]),
	}
	if next == b.sel {
		return
	}
	b.sel = next
	if b.onDrag != nil {
		b.onDrag(next.Left, next.Right)
	}
}
