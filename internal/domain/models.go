package domain

import "fmt"

// Indices is the selected sub-range of a range bar, inclusive on both ends.
type Indices struct {
	Left  int
	Right int
}

// String renders the pair as "[left, right]"
func (i Indices) String() string {
	return fmt.Sprintf("[%d, %d]", i.Left, i.Right)
}

// Ordered reports whether Left <= Right
func (i Indices) Ordered() bool {
	return i.Left <= i.Right
}

// Within reports whether both indices fall in [0, tickCount-1] and are ordered
func (i Indices) Within(tickCount int) bool {
	return i.Left >= 0 && i.Ordered() && i.Right < tickCount
}

// ParamName identifies one of the tunable bar parameters
type ParamName string

// Tunable parameters
const (
	ParamTickCount            ParamName = "tickCount"
	ParamTickHeight           ParamName = "tickHeight"
	ParamBarWeight            ParamName = "barWeight"
	ParamConnectingLineWeight ParamName = "connectingLineWeight"
	ParamThumbRadius          ParamName = "thumbRadius"
)

// ParamNames lists every parameter in display order
var ParamNames = []ParamName{
	ParamTickCount,
	ParamTickHeight,
	ParamBarWeight,
	ParamConnectingLineWeight,
	ParamThumbRadius,
}

// AutoThumbRadius is the thumbRadius sentinel meaning "use the default radius"
const AutoThumbRadius = -1.0

// Default widget values
const (
	DefaultTickCount            = 3
	DefaultTickHeight           = 24.0
	DefaultBarWeight            = 2.0
	DefaultConnectingLineWeight = 4.0
	DefaultThumbRadius          = AutoThumbRadius
)

// MaxTickCount is the largest tick count the bar accepts
const MaxTickCount = 512

// Surface is a display label the core writes values to
type Surface interface {
	SetText(text string)
}
