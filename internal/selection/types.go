package selection

import (
	"errors"
	"fmt"

	"rangebar/internal/domain"
)

var (
	// ErrRange reports indices outside 0 <= left <= right < tickCount
	ErrRange = errors.New("selection out of range")
	// ErrInvalidTickCount reports a tick count below two
	ErrInvalidTickCount = errors.New("tick count must be at least 2")
	// ErrReentrant reports a mutation attempted from inside an observer
	ErrReentrant = errors.New("selection mutated from an observer")
)

// RangeError describes a rejected index pair
type RangeError struct {
	Left      int
	Right     int
	TickCount int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("indices [%d, %d] invalid for %d ticks", e.Left, e.Right, e.TickCount)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// TickCountSource is a read-only view of the authoritative tick count
type TickCountSource interface {
	TickCount() int
}

// Observer receives every accepted selection
type Observer = func(domain.Indices)

// Phase tells whether a thumb is being dragged
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}
