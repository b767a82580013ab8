package metrics

import (
	"math"
	"time"
)

// SeriesPoint is one marker of the line chart in SVG coordinates (y grows downward).
type SeriesPoint struct {
	X, Y  float64
	Delay time.Duration
	Label string
}

// Segment is one arc of the donut chart.
type Segment struct {
	Label    string
	Stroke   string
	Fraction float64
}

// Bar is one column of the bar chart.
type Bar struct {
	Week      string
	Height    int // px
	Value     int
	Delay     time.Duration
	Highlight bool
}

// AreaPath is the geometry of the retention chart: a straight decline from
// (0, StartY) to (Width, EndY) inside a Width x Height box.
type AreaPath struct {
	Width, Height  float64
	StartY, EndY   float64
	BorderLength   float64
	ThresholdTop   float64 // fraction of the height, from the top
	ThresholdLabel string
	Ticks          []string
}

// DefaultSeries is the daily views curve.
func DefaultSeries() []SeriesPoint {
	return []SeriesPoint{
		{X: 0, Y: 150, Delay: 0, Label: "Día 1"},
		{X: 75, Y: 125, Delay: 200 * time.Millisecond, Label: "Día 8"},
		{X: 150, Y: 80, Delay: 400 * time.Millisecond, Label: "Día 15"},
		{X: 225, Y: 40, Delay: 600 * time.Millisecond, Label: "Día 23"},
		{X: 300, Y: 10, Delay: 800 * time.Millisecond, Label: "Día 30"},
	}
}

// DefaultSegments is the engagement split.
func DefaultSegments() []Segment {
	return []Segment{
		{Label: "Likes", Stroke: "#ec4899", Fraction: 0.55},
		{Label: "Comentarios", Stroke: "#3b82f6", Fraction: 0.25},
		{Label: "Guardados", Stroke: "#06b6d4", Fraction: 0.20},
	}
}

// DefaultBars is the weekly replies series.
func DefaultBars() []Bar {
	return []Bar{
		{Week: "Sem 1", Height: 60, Value: 500, Delay: 0},
		{Week: "Sem 2", Height: 100, Value: 1200, Delay: 100 * time.Millisecond},
		{Week: "Sem 3", Height: 140, Value: 2800, Delay: 200 * time.Millisecond, Highlight: true},
	}
}

// DefaultArea is the audience retention curve.
func DefaultArea() AreaPath {
	return AreaPath{
		Width:          300,
		Height:         150,
		StartY:         0,
		EndY:           120,
		BorderLength:   400,
		ThresholdTop:   0.35,
		ThresholdLabel: "Punto Crítico",
		Ticks:          []string{"0s", "3s", "10s", "30s"},
	}
}

// FractionSum adds up the segment fractions. Segments only tile without
// overlapping while the sum stays at or below 1.
func FractionSum(segments []Segment) float64 {
	var sum float64
	for _, s := range segments {
		sum += s.Fraction
	}
	return sum
}

// Rotations returns the pre-rotation of each segment in degrees: 360 times
// the sum of the fractions of the segments before it.
func Rotations(segments []Segment) []float64 {
	out := make([]float64, len(segments))
	var cumulative float64
	for i, s := range segments {
		out[i] = 360 * cumulative
		cumulative += s.Fraction
	}
	return out
}

// Circumference of a circle of radius r.
func Circumference(r float64) float64 {
	return 2 * math.Pi * r
}

// Percent of the segment, rounded to a whole number.
func (s Segment) Percent() int {
	return int(math.Round(s.Fraction * 100))
}

// FillPath is the closed region under the retention line.
func (a AreaPath) FillPath() string {
	return "M0," + num(a.StartY) + " L" + num(a.Width) + "," + num(a.EndY) +
		" L" + num(a.Width) + "," + num(a.Height) + " L0," + num(a.Height) + " Z"
}

// BorderPath is the retention line alone.
func (a AreaPath) BorderPath() string {
	return "M0," + num(a.StartY) + " L" + num(a.Width) + "," + num(a.EndY)
}

// RetentionAt converts the curve height at x into a percentage of the audience.
func (a AreaPath) RetentionAt(x float64) float64 {
	y := a.StartY + (a.EndY-a.StartY)*(x/a.Width)
	return (a.Height - y) / a.Height * 100
}

// ThresholdRetention is the retention percentage the critical-point marker sits at.
func (a AreaPath) ThresholdRetention() float64 {
	return (1 - a.ThresholdTop) * 100
}
