package models

// Series is one named line of values.
type Series struct {
	Name   string
	Values []float64
}

// Threshold is a labelled horizontal marker.
type Threshold struct {
	Label string
	Value float64
}

// ChartData is a chart-library neutral description of a metric.
type ChartData struct {
	Title     string
	Subtitle  string
	Kind      string // line, area, bar or donut
	XAxis     []string
	Series    []Series
	Threshold *Threshold
}
