package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionCSS(t *testing.T) {
	tests := []struct {
		name string
		tr   Transition
		want string
	}{
		{
			name: "keyword easing without delay",
			tr:   Transition{Property: "stroke-dashoffset", Duration: 1500 * time.Millisecond, Easing: EaseOut},
			want: "stroke-dashoffset 1.5s ease-out",
		},
		{
			name: "cubic easing with delay",
			tr:   Transition{Property: "transform", Duration: 300 * time.Millisecond, Delay: 200 * time.Millisecond, Easing: BackOut},
			want: "transform 0.3s cubic-bezier(0.175, 0.885, 0.32, 1.275) 0.2s",
		},
		{
			name: "overshoot",
			tr:   Transition{Property: "transform", Duration: 600 * time.Millisecond, Delay: 100 * time.Millisecond, Easing: Overshoot},
			want: "transform 0.6s cubic-bezier(0.34, 1.56, 0.64, 1) 0.1s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tr.CSS())
		})
	}
}

func TestElementInline(t *testing.T) {
	e := Element{
		Name:   "dot",
		Base:   Style{{Property: "transform-origin", Value: "center"}},
		Rest:   Style{{Property: "transform", Value: "scale(0)"}},
		Active: Style{{Property: "transform", Value: "scale(1)"}},
		Transitions: []Transition{
			{Property: "transform", Duration: 300 * time.Millisecond, Delay: 400 * time.Millisecond, Easing: Ease},
		},
	}

	assert.Equal(t, "transform-origin: center; transform: scale(0); transition: transform 0.3s ease 0.4s", e.Inline(false))
	assert.Equal(t, "transform-origin: center; transform: scale(1); transition: transform 0.3s ease 0.4s", e.Inline(true))
	assert.Equal(t, "scale(1)", e.State(true).Get("transform"))
	assert.Equal(t, "", e.State(true).Get("opacity"))
	assert.Equal(t, 400*time.Millisecond, e.LastStart())
}

func TestStyleImportant(t *testing.T) {
	s := Style{{Property: "opacity", Value: "1"}, {Property: "transform", Value: "translateY(0)"}}
	assert.Equal(t, "opacity: 1 !important; transform: translateY(0) !important", s.Important())
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{Ease, EaseOut, BackOut, Overshoot} {
		t.Run(e.CSS(), func(t *testing.T) {
			assert.Equal(t, 0.0, e.At(0))
			assert.Equal(t, 1.0, e.At(1))
			assert.Equal(t, 0.0, e.At(-3))
			assert.Equal(t, 1.0, e.At(4))
		})
	}
}

func TestEaseOutIsMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOut.At(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev-1e-9, "step %d", i)
		require.LessOrEqual(t, v, 1.0+1e-9)
		prev = v
	}
}

func TestOvershootPassesTarget(t *testing.T) {
	peak := 0.0
	for i := 1; i < 100; i++ {
		if v := Overshoot.At(float64(i) / 100); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "bars should bounce past full height")
	assert.InDelta(t, 1.0, Overshoot.At(0.999), 0.01, "and settle at full height")
}

func TestEasingMatchesCurveAtKnownPoint(t *testing.T) {
	// Linear control points make the curve the identity.
	linear := Cubic(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, linear.At(x), 1e-5)
	}
}
