package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestNewGridStartsAtRest(t *testing.T) {
	grid := NewGrid()

	require.Len(t, grid.Cards(), 4)
	assert.Equal(t, []bool{false, false, false, false}, grid.ActiveSet())

	html := render(t, grid)
	assert.Equal(t, 4, strings.Count(html, `data-active="false"`))
	assert.NotContains(t, html, `data-active="true"`)
}

func TestEnterActivatesOnlyThatCard(t *testing.T) {
	for i := 0; i < 4; i++ {
		grid := NewGrid()
		grid.Enter(i)

		want := []bool{false, false, false, false}
		want[i] = true
		assert.Equal(t, want, grid.ActiveSet(), "entering card %d", i+1)
	}
}

func TestLeaveAndReenter(t *testing.T) {
	card := NewGrid().Card(1)
	require.NotNil(t, card)

	card.Enter()
	assert.True(t, card.Active())
	card.Leave()
	assert.False(t, card.Active())
	card.Enter()
	assert.True(t, card.Active())

	// Repeated transitions don't accumulate.
	card.Enter()
	card.Leave()
	card.Leave()
	assert.False(t, card.Active())
}

func TestHoverScenario(t *testing.T) {
	grid := NewGrid()

	grid.Enter(0)
	assert.Equal(t, []bool{true, false, false, false}, grid.ActiveSet())

	grid.Leave(0)
	assert.Equal(t, []bool{false, false, false, false}, grid.ActiveSet())

	grid.Enter(2)
	assert.Equal(t, []bool{false, false, true, false}, grid.ActiveSet())
}

func TestOutOfRangeIndexesAreIgnored(t *testing.T) {
	grid := NewGrid()
	grid.Enter(-1)
	grid.Enter(4)
	grid.Leave(9)

	assert.Nil(t, grid.Card(4))
	assert.Equal(t, []bool{false, false, false, false}, grid.ActiveSet())
}

func TestLookup(t *testing.T) {
	grid := NewGrid()

	card, ok := grid.Lookup(SlugReplies)
	require.True(t, ok)
	assert.Equal(t, "Réplicas Generadas por Semana", card.Title)
	assert.Equal(t, "Indicador de Viralidad", card.Subtitle)
	assert.Equal(t, "/metricas/replicas", card.Href())

	_, ok = grid.Lookup("nope")
	assert.False(t, ok)
}

func TestCardRendersStateFromFlag(t *testing.T) {
	card := NewGrid().Card(0)

	rest := render(t, card)
	assert.Contains(t, rest, `data-active="false"`)
	assert.Contains(t, rest, "stroke-dashoffset: 1000; transition: stroke-dashoffset 1.5s ease-out")
	assert.Contains(t, rest, "transform: scale(0)")
	assert.Contains(t, rest, "Visualizaciones Diarias")
	assert.Contains(t, rest, `href="/metricas/visualizaciones"`)

	card.Enter()
	active := render(t, card)
	assert.Contains(t, active, `data-active="true"`)
	assert.Contains(t, active, "stroke-dashoffset: 0; transition: stroke-dashoffset 1.5s ease-out")
	assert.Contains(t, active, "transform: scale(1)")
	assert.NotContains(t, active, "transform: scale(0)")
}

func TestDonutFractionsAndRotations(t *testing.T) {
	segments := DefaultSegments()

	assert.InDelta(t, 1.0, FractionSum(segments), 1e-9)

	rot := Rotations(segments)
	require.Len(t, rot, 3)
	assert.InDelta(t, 0, rot[0], 1e-9)
	assert.InDelta(t, 198, rot[1], 1e-9)
	assert.InDelta(t, 288, rot[2], 1e-9)

	html := render(t, NewDonutChart().Render(false))
	assert.Contains(t, html, "rotate(198deg)")
	assert.Contains(t, html, "rotate(288deg)")
	assert.Contains(t, html, "Likes (55%)")
	assert.Contains(t, html, "Comentarios (25%)")
	assert.Contains(t, html, "Guardados (20%)")
}

func TestDonutOffsets(t *testing.T) {
	chart := NewDonutChart()
	circ := chart.Circumference()
	assert.InDelta(t, 251.3, circ, 0.05)

	for i, s := range chart.Segments {
		assert.InDelta(t, circ*(1-s.Fraction), chart.ActiveOffset(i), 1e-9)
	}

	rest := render(t, chart.Render(false))
	assert.Equal(t, 3, strings.Count(rest, "stroke-dashoffset: 251.3;"))

	active := render(t, chart.Render(true))
	assert.Contains(t, active, "stroke-dashoffset: 113.1;")
	assert.Contains(t, active, "stroke-dashoffset: 188.5;")
	assert.Contains(t, active, "stroke-dashoffset: 201.1;")
}

func TestRotationsStayParametric(t *testing.T) {
	segments := []Segment{{Fraction: 0.5}, {Fraction: 0.3}, {Fraction: 0.2}}
	assert.InDeltaSlice(t, []float64{0, 180, 288}, Rotations(segments), 1e-9)
}

func TestBarHeightsFollowValues(t *testing.T) {
	bars := DefaultBars()
	require.Len(t, bars, 3)

	want := map[int]int{60: 500, 100: 1200, 140: 2800}
	for i, b := range bars {
		assert.Equal(t, want[b.Height], b.Value)
		if i > 0 {
			assert.Greater(t, b.Height, bars[i-1].Height)
			assert.Greater(t, b.Value, bars[i-1].Value)
		}
	}
}

func TestBarLabelsFollowTheirBars(t *testing.T) {
	chart := NewBarChart()
	els := chart.Elements()
	n := len(chart.Bars)

	for i, b := range chart.Bars {
		fill, label := els[i], els[n+i]
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, fill.LastStart())
		assert.Greater(t, label.LastStart(), fill.LastStart())
		assert.Equal(t, b.LabelDelay(), label.LastStart())
	}

	html := render(t, chart.Render(false))
	assert.Contains(t, html, "height: 60px")
	assert.Contains(t, html, "height: 140px")
	assert.Contains(t, html, "cubic-bezier(0.34, 1.56, 0.64, 1)")
	assert.Contains(t, html, "SEM 3")
	assert.Contains(t, html, "chart-bar__column--highlight")
}

func TestLineMarkersStagger(t *testing.T) {
	els := NewLineChart().Elements()
	require.Len(t, els, 6)

	for i, e := range els[1:] {
		assert.Equal(t, time.Duration(i)*200*time.Millisecond, e.LastStart())
	}
}

func TestAreaThresholdAppearsLast(t *testing.T) {
	chart := NewAreaChart()
	els := chart.Elements()

	var threshold time.Duration
	for _, e := range els {
		if e.Name == "area-threshold" {
			threshold = e.LastStart()
		}
	}
	for _, e := range els {
		assert.LessOrEqual(t, e.LastStart(), threshold, e.Name)
	}

	html := render(t, chart.Render(false))
	assert.Contains(t, html, "Punto Crítico")
	assert.Contains(t, html, "top: 35%")
	assert.Contains(t, html, `d="M0,0 L300,120 L300,150 L0,150 Z"`)
	assert.Contains(t, html, `d="M0,0 L300,120"`)
}

func TestAreaGeometry(t *testing.T) {
	geo := DefaultArea()

	assert.InDelta(t, 100, geo.RetentionAt(0), 1e-9)
	assert.InDelta(t, 20, geo.RetentionAt(300), 1e-9)
	assert.InDelta(t, 65, geo.ThresholdRetention(), 1e-9)
}

func TestStylesheet(t *testing.T) {
	css := NewGrid().Stylesheet()

	for _, name := range []string{"line-path", "line-point-5", "donut-segment-2", "donut-center", "bar-fill-3", "bar-value-1", "area-border", "area-threshold"} {
		assert.Contains(t, css, `.metric-card:hover [data-motion="`+name+`"]`)
		assert.Contains(t, css, `.metric-card[data-active="true"] [data-motion="`+name+`"]`)
	}
	assert.Contains(t, css, "stroke-dashoffset: 188.5 !important")
	assert.Contains(t, css, `.metric-card[data-active="false"]:not(:hover) [data-motion="line-path"] { stroke-dashoffset: 1000 !important; }`)
	assert.Contains(t, css, `.metric-card[data-active="false"]:not(:hover) [data-motion="bar-fill-2"] { transform: scaleY(0) !important; }`)
	assert.Contains(t, css, `.metric-card[data-active="false"]:not(:hover) [data-motion="donut-segment-1"] { stroke-dashoffset: 251.3 !important; }`)

	// Rest rules only apply while motion is allowed, so the reduced-motion
	// fallback keeps showing the final state.
	restAt := strings.Index(css, "prefers-reduced-motion: no-preference")
	reducedAt := strings.Index(css, "prefers-reduced-motion: reduce")
	require.NotEqual(t, -1, restAt)
	assert.Less(t, restAt, reducedAt)
	assert.NotContains(t, css[reducedAt:], `data-active="false"`)
	assert.Contains(t, css, "@media (prefers-reduced-motion: reduce)")
	assert.Contains(t, css, "[data-motion] { transition: none !important; }")
}

func TestUpperKeepsAccents(t *testing.T) {
	assert.Equal(t, "DÍA 15", upper("Día 15"))
}
