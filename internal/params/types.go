package params

import (
	"errors"
	"fmt"

	"rangebar/internal/domain"
)

var (
	// ErrInvalidParam reports a value rejected by a validated parameter
	ErrInvalidParam = errors.New("invalid parameter value")
	// ErrUnknownParam reports a name the store has no descriptor for
	ErrUnknownParam = errors.New("unknown parameter")
)

// ParamError describes a rejected parameter value
type ParamError struct {
	Name  domain.ParamName
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s = %g rejected", e.Name, e.Value)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParam }

// Widget is the rendering side each parameter is applied to
type Widget interface {
	SetTickCount(n int) error
	SetTickHeight(v float64)
	SetBarWeight(v float64)
	SetConnectingLineWeight(v float64)
	SetThumbRadius(v float64)
}

// TickCountListener is told about a committed tick count before the widget is
type TickCountListener interface {
	OnTickCountChanged(n int) error
}

// Descriptor declares how one parameter is checked, applied and displayed.
//
// Validated marks whether a failing Valid predicate rejects the value. When
// false the value is forwarded anyway and the widget is trusted to clamp it.
type Descriptor struct {
	Name      domain.ParamName
	Validated bool
	Valid     func(v float64) bool
	Normalize func(raw float64) float64
	Apply     func(v float64) error
	Format    func(v float64) string
}
