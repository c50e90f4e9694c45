package params

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"rangebar/internal/domain"
	"rangebar/internal/eventbus"
)

// Store holds the authoritative value of every bar parameter
type Store struct {
	descs     map[domain.ParamName]Descriptor
	values    map[domain.ParamName]float64
	labels    map[domain.ParamName]domain.Surface
	selection TickCountListener
	bus       eventbus.EventBus
}

// NewStore creates a store seeded with initial values. Values are not pushed
// to the widget until ApplyAll is called.
func NewStore(w Widget, initial map[domain.ParamName]float64, bus eventbus.EventBus) *Store {
	s := &Store{
		descs:  make(map[domain.ParamName]Descriptor),
		values: make(map[domain.ParamName]float64),
		labels: make(map[domain.ParamName]domain.Surface),
		bus:    bus,
	}
	for _, d := range Descriptors(w) {
		s.descs[d.Name] = d
	}

	s.values[domain.ParamTickCount] = domain.DefaultTickCount
	s.values[domain.ParamTickHeight] = domain.DefaultTickHeight
	s.values[domain.ParamBarWeight] = domain.DefaultBarWeight
	s.values[domain.ParamConnectingLineWeight] = domain.DefaultConnectingLineWeight
	s.values[domain.ParamThumbRadius] = domain.DefaultThumbRadius
	for name, v := range initial {
		if _, ok := s.descs[name]; ok {
			s.values[name] = v
		}
	}

	return s
}

// Descriptors returns the five parameter descriptors bound to w. Only
// tickCount is validated; the others are forwarded unchecked.
func Descriptors(w Widget) []Descriptor {
	nonNegative := func(v float64) bool { return v >= 0 }

	return []Descriptor{
		{
			Name:      domain.ParamTickCount,
			Validated: true,
			Valid: func(v float64) bool {
				return v >= 2 && v <= domain.MaxTickCount && v == math.Trunc(v)
			},
			Apply: func(v float64) error { return w.SetTickCount(int(v)) },
		},
		{
			Name:  domain.ParamTickHeight,
			Valid: nonNegative,
			Apply: func(v float64) error { w.SetTickHeight(v); return nil },
		},
		{
			Name:  domain.ParamBarWeight,
			Valid: nonNegative,
			Apply: func(v float64) error { w.SetBarWeight(v); return nil },
		},
		{
			Name:  domain.ParamConnectingLineWeight,
			Valid: nonNegative,
			Apply: func(v float64) error { w.SetConnectingLineWeight(v); return nil },
		},
		{
			Name:  domain.ParamThumbRadius,
			Valid: func(v float64) bool { return v == domain.AutoThumbRadius || v >= 0 },
			// A slider parked at zero means "auto"
			Normalize: func(raw float64) float64 {
				if raw == 0 {
					return domain.AutoThumbRadius
				}
				return raw
			},
			Apply: func(v float64) error { w.SetThumbRadius(v); return nil },
			Format: func(v float64) string {
				if v == domain.AutoThumbRadius {
					return "N/A"
				}
				return formatNumber(v)
			},
		},
	}
}

// AttachSelection sets who re-clamps the selection on tick count changes
func (s *Store) AttachSelection(l TickCountListener) {
	s.selection = l
}

// Bind attaches the label a parameter's display string is written to
func (s *Store) Bind(name domain.ParamName, surface domain.Surface) {
	s.labels[name] = surface
}

// SetValue normalizes, checks and applies a parameter value.
//
// A validated parameter that fails its predicate returns a *ParamError and
// changes nothing. Other parameters are applied regardless.
func (s *Store) SetValue(name domain.ParamName, raw float64) error {
	d, ok := s.descs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}

	v := raw
	if d.Normalize != nil {
		v = d.Normalize(raw)
	}

	if d.Valid != nil && !d.Valid(v) {
		if d.Validated {
			return &ParamError{Name: name, Value: v}
		}
		log.Printf("params: %s = %g fails its check, forwarding unchecked", name, v)
	}

	prev := s.values[name]
	s.values[name] = v

	// Re-clamp the selection before the widget redraws with the new geometry
	if name == domain.ParamTickCount && s.selection != nil {
		if err := s.selection.OnTickCountChanged(int(v)); err != nil {
			log.Printf("params: selection refused tick count %d: %v", int(v), err)
		}
	}

	if err := d.Apply(v); err != nil {
		s.values[name] = prev
		return fmt.Errorf("apply %s: %w", name, err)
	}

	label := s.Label(name)
	if surface := s.labels[name]; surface != nil {
		surface.SetText(label)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ParameterChangedEvent{Name: name, Value: v, Label: label})
	}

	return nil
}

// ApplyAll pushes every stored value to the widget and labels, in display
// order. Used once at startup.
func (s *Store) ApplyAll() error {
	for _, name := range domain.ParamNames {
		if err := s.descs[name].Apply(s.values[name]); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	s.Resync()
	return nil
}

// Resync rewrites every bound label from the stored values
func (s *Store) Resync() {
	for _, name := range domain.ParamNames {
		if surface := s.labels[name]; surface != nil {
			surface.SetText(s.Label(name))
		}
	}
}

// Label renders "<name> = <value>"
func (s *Store) Label(name domain.ParamName) string {
	v := s.values[name]
	format := formatNumber
	if d, ok := s.descs[name]; ok && d.Format != nil {
		format = d.Format
	}
	return fmt.Sprintf("%s = %s", name, format(v))
}

// Value returns the stored value of a parameter
func (s *Store) Value(name domain.ParamName) float64 {
	return s.values[name]
}

// TickCount returns the authoritative tick count
func (s *Store) TickCount() int {
	return int(s.values[domain.ParamTickCount])
}

// Descriptor returns the descriptor registered for name
func (s *Store) Descriptor(name domain.ParamName) (Descriptor, bool) {
	d, ok := s.descs[name]
	return d, ok
}

// Snapshot copies the current values
func (s *Store) Snapshot() map[domain.ParamName]float64 {
	out := make(map[domain.ParamName]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
