package metrics

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

// LineChart draws the daily views curve. The path is revealed by sliding its
// dash offset from the full path length to zero while the markers pop in from
// left to right.
type LineChart struct {
	Path       string
	PathLength float64
	Stroke     string
	Points     []SeriesPoint
	Axis       []string
}

// NewLineChart returns the views chart with its fixed data.
func NewLineChart() LineChart {
	return LineChart{
		Path:       "M0,150 C50,140 100,110 150,80 C200,50 250,30 300,10",
		PathLength: 1000,
		Stroke:     "#ec4899",
		Points:     DefaultSeries(),
		Axis:       []string{"Día 1", "Día 15", "Día 30"},
	}
}

// Elements lists the path followed by one element per marker.
func (c LineChart) Elements() []motion.Element {
	els := make([]motion.Element, 0, len(c.Points)+1)
	els = append(els, motion.Element{
		Name:   "line-path",
		Rest:   css("stroke-dashoffset", num(c.PathLength)),
		Active: css("stroke-dashoffset", "0"),
		Transitions: []motion.Transition{
			{Property: "stroke-dashoffset", Duration: 1500 * time.Millisecond, Easing: motion.EaseOut},
		},
	})
	for i, p := range c.Points {
		els = append(els, motion.Element{
			Name:   fmt.Sprintf("line-point-%d", i+1),
			Base:   css("transform-box", "fill-box", "transform-origin", "center"),
			Rest:   css("transform", "scale(0)"),
			Active: css("transform", "scale(1)"),
			Transitions: []motion.Transition{
				{Property: "transform", Duration: 300 * time.Millisecond, Delay: p.Delay, Easing: motion.BackOut},
			},
		})
	}
	return els
}

// Render draws the chart for the given state.
func (c LineChart) Render(active bool) g.Node {
	els := c.Elements()

	markers := make([]g.Node, len(c.Points))
	for i, p := range c.Points {
		markers[i] = circle(
			g.Attr("cx", num(p.X)),
			g.Attr("cy", num(p.Y)),
			g.Attr("r", "4"),
			g.Attr("fill", c.Stroke),
			g.Attr("stroke", "#0f172a"),
			g.Attr("stroke-width", "2"),
			animate(els[i+1], active),
		)
	}

	return Div(
		Class("chart chart--line"),
		Div(
			Class("chart-line__plot"),
			Div(Class("chart-line__grid"), g.Group(g.Map([]int{100, 75, 50, 25}, func(int) g.Node {
				return Div(Class("chart-line__rule"))
			}))),
			svg(
				Class("chart-line__svg"),
				g.Attr("viewBox", "0 0 300 150"),
				g.Attr("role", "img"),
				g.Attr("aria-label", "Visualizaciones diarias en aumento"),
				path(
					g.Attr("d", c.Path),
					g.Attr("fill", "none"),
					g.Attr("stroke", c.Stroke),
					g.Attr("stroke-width", "3"),
					g.Attr("stroke-dasharray", num(c.PathLength)),
					animate(els[0], active),
				),
				g.Group(markers),
			),
		),
		Div(Class("chart-axis chart-axis--spread"), g.Group(g.Map(c.Axis, func(label string) g.Node {
			return Span(g.Text(upper(label)))
		}))),
	)
}
