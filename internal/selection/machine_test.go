package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangebar/internal/domain"
)

// ticks is a settable TickCountSource standing in for the parameter store
type ticks struct{ n int }

func (t *ticks) TickCount() int { return t.n }

// changeTicks mimics the store: commit the count, then notify the machine
func changeTicks(m *Machine, src *ticks, n int) error {
	if n >= 2 {
		src.n = n
	}
	return m.OnTickCountChanged(n)
}

func record(m *Machine) *[]domain.Indices {
	var got []domain.Indices
	m.OnRangeChange(func(sel domain.Indices) { got = append(got, sel) })
	return &got
}

func TestNewSelectsWholeBar(t *testing.T) {
	m := New(&ticks{n: 7})
	l, r := m.CurrentIndices()
	assert.Equal(t, 0, l)
	assert.Equal(t, 6, r)
	assert.Equal(t, Idle, m.Phase())
}

func TestSetIndicesAcceptsEveryValidPair(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for l := 0; l < n; l++ {
			for r := l; r < n; r++ {
				src := &ticks{n: 3}
				m := New(src)
				require.NoError(t, changeTicks(m, src, n))
				require.NoError(t, m.SetIndices(l, r), "n=%d l=%d r=%d", n, l, r)

				gotL, gotR := m.CurrentIndices()
				assert.Equal(t, l, gotL)
				assert.Equal(t, r, gotR)
			}
		}
	}
}

func TestSetIndicesRejects(t *testing.T) {
	cases := map[string]struct {
		left, right int
	}{
		"Reversed":      {left: 5, right: 2},
		"NegativeLeft":  {left: -1, right: 2},
		"RightPastEnd":  {left: 0, right: 10},
		"BothPastEnd":   {left: 10, right: 11},
		"ReversedByOne": {left: 4, right: 3},
		"NegativeBoth":  {left: -3, right: -1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := New(&ticks{n: 10})
			require.NoError(t, m.SetIndices(2, 6))
			got := record(m)

			err := m.SetIndices(tc.left, tc.right)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRange))

			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, 10, rangeErr.TickCount)

			l, r := m.CurrentIndices()
			assert.Equal(t, 2, l)
			assert.Equal(t, 6, r)
			assert.Empty(t, *got)
		})
	}
}

func TestSetIndicesNotifiesOncePerAcceptedMutation(t *testing.T) {
	m := New(&ticks{n: 10})
	got := record(m)

	require.NoError(t, m.SetIndices(1, 4))
	require.NoError(t, m.SetIndices(1, 4))
	require.Error(t, m.SetIndices(4, 1))

	assert.Equal(t, []domain.Indices{{Left: 1, Right: 4}, {Left: 1, Right: 4}}, *got)
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	m := New(&ticks{n: 5})

	var order []string
	m.OnRangeChange(func(domain.Indices) { order = append(order, "a") })
	unsubscribe := m.OnRangeChange(func(domain.Indices) { order = append(order, "b") })
	m.OnRangeChange(func(domain.Indices) { order = append(order, "c") })

	require.NoError(t, m.SetIndices(0, 1))
	unsubscribe()
	require.NoError(t, m.SetIndices(0, 2))

	assert.Equal(t, []string{"a", "b", "c", "a", "c"}, order)
}

func TestReentrantMutationIsRejected(t *testing.T) {
	m := New(&ticks{n: 5})

	var inner error
	m.OnRangeChange(func(domain.Indices) {
		inner = m.SetIndices(0, 0)
	})

	require.NoError(t, m.SetIndices(1, 3))
	assert.ErrorIs(t, inner, ErrReentrant)

	l, r := m.CurrentIndices()
	assert.Equal(t, 1, l)
	assert.Equal(t, 3, r)

	// Observers may still read
	var seen [2]int
	m.OnRangeChange(func(domain.Indices) {
		seen[0], seen[1] = m.CurrentIndices()
	})
	require.NoError(t, m.SetIndices(2, 4))
	assert.Equal(t, [2]int{2, 4}, seen)
}

func TestOnTickCountChangedClamps(t *testing.T) {
	cases := map[string]struct {
		start    domain.Indices
		newCount int
		expected domain.Indices
		notified bool
	}{
		"ClampRightOnly": {
			start:    domain.Indices{Left: 3, Right: 8},
			newCount: 5,
			expected: domain.Indices{Left: 3, Right: 4},
			notified: true,
		},
		"ClampBoth": {
			start:    domain.Indices{Left: 7, Right: 9},
			newCount: 3,
			expected: domain.Indices{Left: 2, Right: 2},
			notified: true,
		},
		"GrowKeepsSelection": {
			start:    domain.Indices{Left: 3, Right: 8},
			newCount: 20,
			expected: domain.Indices{Left: 3, Right: 8},
		},
		"ExactFit": {
			start:    domain.Indices{Left: 3, Right: 8},
			newCount: 9,
			expected: domain.Indices{Left: 3, Right: 8},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			src := &ticks{n: 10}
			m := New(src)
			require.NoError(t, m.SetIndices(tc.start.Left, tc.start.Right))
			got := record(m)

			require.NoError(t, changeTicks(m, src, tc.newCount))
			assert.Equal(t, tc.expected, m.Selection())
			if tc.notified {
				assert.Equal(t, []domain.Indices{tc.expected}, *got)
			} else {
				assert.Empty(t, *got)
			}
		})
	}
}

func TestOnTickCountChangedIsIdempotent(t *testing.T) {
	for n := 2; n <= 12; n++ {
		src := &ticks{n: 12}
		m := New(src)
		require.NoError(t, m.SetIndices(4, 11))

		require.NoError(t, changeTicks(m, src, n))
		once := m.Selection()
		require.NoError(t, changeTicks(m, src, n))
		assert.Equal(t, once, m.Selection(), "n=%d", n)
		assert.True(t, once.Within(n))
	}
}

func TestOnTickCountChangedRejectsBelowTwo(t *testing.T) {
	for _, n := range []int{1, 0, -4} {
		src := &ticks{n: 10}
		m := New(src)
		require.NoError(t, m.SetIndices(3, 8))
		got := record(m)

		err := changeTicks(m, src, n)
		assert.ErrorIs(t, err, ErrInvalidTickCount)
		assert.Equal(t, domain.Indices{Left: 3, Right: 8}, m.Selection())
		assert.Equal(t, 10, src.n)
		assert.Empty(t, *got)
	}
}

func TestDragPhase(t *testing.T) {
	m := New(&ticks{n: 4})
	m.BeginDrag()
	assert.Equal(t, Dragging, m.Phase())
	assert.Equal(t, "dragging", m.Phase().String())

	// Accepted transitions are the same while dragging
	require.NoError(t, m.SetIndices(1, 2))
	m.EndDrag()
	assert.Equal(t, Idle, m.Phase())
}
