package dispatch

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"rangebar/internal/domain"
	"rangebar/internal/eventbus"
)

// ErrParse reports index text that is empty or not an integer
var ErrParse = errors.New("not an integer")

// ParseError describes index text that failed to parse
type ParseError struct {
	Field string
	Text  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s index %q: not an integer", e.Field, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Selection is the selection state machine as seen by the dispatcher
type Selection interface {
	SetIndices(left, right int) error
	CurrentIndices() (int, int)
	OnRangeChange(fn func(domain.Indices)) func()
	BeginDrag()
	EndDrag()
}

// Params is the parameter store as seen by the dispatcher
type Params interface {
	SetValue(name domain.ParamName, raw float64) error
	Value(name domain.ParamName) float64
	Resync()
}

// ThumbSetter is the rendering widget's index setter
type ThumbSetter interface {
	SetThumbIndices(left, right int) error
}

// IndexReader reads the indices committed in the live rendering widget
type IndexReader interface {
	CurrentIndices() (int, int)
}

// SliderRange bounds the keyboard nudges of a parameter slider
type SliderRange struct {
	Min, Max, Step float64
}

// Options tune optional dispatcher behaviour
type Options struct {
	// ResyncParamsOnRestore also rewrites parameter labels on Restore
	ResyncParamsOnRestore bool
	Sliders               map[domain.ParamName]SliderRange
}

// Dispatcher routes each input surface to the component owning the value and
// pushes accepted values back out to every display surface. Every entry point
// returns the rejection; callers decide whether to surface it.
type Dispatcher struct {
	sel    Selection
	params Params
	widget ThumbSetter
	reader IndexReader
	left   domain.Surface
	right  domain.Surface
	bus    eventbus.EventBus
	opts   Options

	source      domain.Source
	unsubscribe func()
}

// New wires the selection to the widget and the two index surfaces
func New(sel Selection, params Params, widget ThumbSetter, reader IndexReader, leftSurface, rightSurface domain.Surface, bus eventbus.EventBus, opts Options) *Dispatcher {
	d := &Dispatcher{
		sel:    sel,
		params: params,
		widget: widget,
		reader: reader,
		left:   leftSurface,
		right:  rightSurface,
		bus:    bus,
		opts:   opts,
		source: domain.SourceTickClamp,
	}
	d.unsubscribe = sel.OnRangeChange(d.publishRange)
	return d
}

// Close detaches the dispatcher from the selection
func (d *Dispatcher) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// publishRange runs once per accepted selection change
func (d *Dispatcher) publishRange(sel domain.Indices) {
	if err := d.widget.SetThumbIndices(sel.Left, sel.Right); err != nil {
		log.Printf("dispatch: widget refused %s: %v", sel, err)
	}
	d.writeIndices(sel)

	if d.bus != nil {
		d.bus.Publish(eventbus.RangeChangedEvent{Indices: sel, Source: d.source})
	}
}

func (d *Dispatcher) writeIndices(sel domain.Indices) {
	if d.left != nil {
		d.left.SetText(strconv.Itoa(sel.Left))
	}
	if d.right != nil {
		d.right.SetText(strconv.Itoa(sel.Right))
	}
}

// withSource tags notifications emitted during fn with src
func (d *Dispatcher) withSource(src domain.Source, fn func() error) error {
	prev := d.source
	d.source = src
	defer func() { d.source = prev }()

	err := fn()
	if err != nil && d.bus != nil {
		d.bus.Publish(eventbus.InputRejectedEvent{Source: src, Err: err})
	}
	return err
}

// CommitText parses the two typed indices and commits them
func (d *Dispatcher) CommitText(leftText, rightText string) error {
	return d.withSource(domain.SourceText, func() error {
		l, err := parseIndex("left", leftText)
		if err != nil {
			return err
		}
		r, err := parseIndex("right", rightText)
		if err != nil {
			return err
		}
		return d.sel.SetIndices(l, r)
	})
}

func parseIndex(field, text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ParseError{Field: field, Text: text}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Field: field, Text: text}
	}
	return n, nil
}

// Sync pushes the committed selection to the widget and index surfaces.
// Used once after the widget has been configured.
func (d *Dispatcher) Sync() error {
	l, r := d.sel.CurrentIndices()
	if err := d.widget.SetThumbIndices(l, r); err != nil {
		return fmt.Errorf("sync widget: %w", err)
	}
	d.writeIndices(domain.Indices{Left: l, Right: r})
	return nil
}

// BeginDrag marks the start of a drag gesture on the widget
func (d *Dispatcher) BeginDrag() {
	d.sel.BeginDrag()
}

// EndDrag marks the end of a drag gesture on the widget
func (d *Dispatcher) EndDrag() {
	d.sel.EndDrag()
}

// Drag commits indices decoded from a drag gesture. On rejection the widget
// is put back on the committed selection.
func (d *Dispatcher) Drag(left, right int) error {
	err := d.withSource(domain.SourceDrag, func() error {
		return d.sel.SetIndices(left, right)
	})
	if err != nil {
		l, r := d.sel.CurrentIndices()
		if werr := d.widget.SetThumbIndices(l, r); werr != nil {
			log.Printf("dispatch: widget refused resync [%d, %d]: %v", l, r, werr)
		}
	}
	return err
}

// Slide applies a slider position to a parameter
func (d *Dispatcher) Slide(name domain.ParamName, position float64) error {
	return d.withSource(domain.SourceSlider, func() error {
		return d.params.SetValue(name, position)
	})
}

// Step nudges a parameter's slider by delta steps, bounded by its range.
// A value already past the bound in the direction of travel is left alone.
// The sentinel thumb radius sits at slider position zero.
func (d *Dispatcher) Step(name domain.ParamName, delta int) error {
	r, ok := d.opts.Sliders[name]
	if !ok {
		r = SliderRange{Min: 0, Max: 20, Step: 1}
	}
	if r.Step <= 0 {
		r.Step = 1
	}

	pos := d.SliderPosition(name)
	next := pos + float64(delta)*r.Step
	switch {
	case delta > 0:
		if pos >= r.Max {
			return nil
		}
		next = math.Min(r.Max, next)
	case delta < 0:
		if pos <= r.Min {
			return nil
		}
		next = math.Max(r.Min, next)
	default:
		return nil
	}
	return d.Slide(name, next)
}

// SliderPosition maps a stored parameter value back to its slider position
func (d *Dispatcher) SliderPosition(name domain.ParamName) float64 {
	v := d.params.Value(name)
	if name == domain.ParamThumbRadius && v == domain.AutoThumbRadius {
		return 0
	}
	return v
}

// Restore republishes the live widget's indices to the index surfaces
// without validating or re-deriving them. Parameter labels are only rewritten
// when ResyncParamsOnRestore is set.
func (d *Dispatcher) Restore() domain.Indices {
	l, r := d.reader.CurrentIndices()
	sel := domain.Indices{Left: l, Right: r}
	d.writeIndices(sel)

	if d.opts.ResyncParamsOnRestore {
		d.params.Resync()
	}

	if d.bus != nil {
		d.bus.Publish(eventbus.RestoredEvent{Indices: sel, ParamsResynced: d.opts.ResyncParamsOnRestore})
	}
	return sel
}
