package metrics

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

// DonutChart draws the engagement split as contiguous arcs of one circle.
//
// Every arc uses a dash pattern one circumference long. At rest the dash is
// pushed fully out of view; when active the offset leaves exactly
// fraction*circumference visible. Each arc is pre-rotated by the cumulative
// angle of the arcs before it, and the whole SVG is turned -90deg so the first
// arc starts at the top.
//
// Offsets use the exact circumference 2πr (251.33 for r=40) rather than a
// truncated 251.2, so they come out as 113.1, 188.5 and 201.1.
type DonutChart struct {
	Radius   float64
	Width    float64
	Track    string
	Segments []Segment
	Center   string
}

// NewDonutChart returns the engagement chart with its fixed data.
func NewDonutChart() DonutChart {
	return DonutChart{
		Radius:   40,
		Width:    20,
		Track:    "#1e293b",
		Segments: DefaultSegments(),
		Center:   "95%",
	}
}

// Circumference of the donut ring.
func (c DonutChart) Circumference() float64 { return Circumference(c.Radius) }

// ActiveOffset is the dash offset that reveals segment i in proportion to its fraction.
func (c DonutChart) ActiveOffset(i int) float64 {
	return c.Circumference() * (1 - c.Segments[i].Fraction)
}

// Elements lists the arcs, the center label and the legend rows.
func (c DonutChart) Elements() []motion.Element {
	circ := c.Circumference()
	rotations := Rotations(c.Segments)

	els := make([]motion.Element, 0, 2*len(c.Segments)+1)
	for i := range c.Segments {
		els = append(els, motion.Element{
			Name:   fmt.Sprintf("donut-segment-%d", i+1),
			Base:   css("transform-origin", "50% 50%", "transform", "rotate("+num(rotations[i])+"deg)"),
			Rest:   css("stroke-dashoffset", num(circ)),
			Active: css("stroke-dashoffset", num(c.ActiveOffset(i))),
			Transitions: []motion.Transition{{
				Property: "stroke-dashoffset",
				Duration: time.Second,
				Delay:    time.Duration(i) * 200 * time.Millisecond,
				Easing:   motion.EaseOut,
			}},
		})
	}
	els = append(els, motion.Element{
		Name:   "donut-center",
		Rest:   css("opacity", "0"),
		Active: css("opacity", "1"),
		Transitions: []motion.Transition{
			{Property: "opacity", Duration: 700 * time.Millisecond, Easing: motion.Ease},
		},
	})
	for i := range c.Segments {
		els = append(els, motion.Element{
			Name:   fmt.Sprintf("donut-legend-%d", i+1),
			Rest:   css("opacity", "0.5"),
			Active: css("opacity", "1"),
			Transitions: []motion.Transition{{
				Property: "opacity",
				Duration: 500 * time.Millisecond,
				Delay:    500*time.Millisecond + time.Duration(i)*100*time.Millisecond,
				Easing:   motion.Ease,
			}},
		})
	}
	return els
}

// Render draws the chart for the given state.
func (c DonutChart) Render(active bool) g.Node {
	els := c.Elements()
	n := len(c.Segments)
	circ := num(c.Circumference())

	arcs := make([]g.Node, n)
	legend := make([]g.Node, n)
	for i, s := range c.Segments {
		arcs[i] = circle(
			g.Attr("cx", "50"),
			g.Attr("cy", "50"),
			g.Attr("r", num(c.Radius)),
			g.Attr("fill", "transparent"),
			g.Attr("stroke", s.Stroke),
			g.Attr("stroke-width", num(c.Width)),
			g.Attr("stroke-dasharray", circ),
			g.If(i == 0, g.Attr("stroke-linecap", "round")),
			animate(els[i], active),
		)
		legend[i] = Div(
			Class("chart-donut__legend-row"),
			animate(els[n+1+i], active),
			Span(Class("chart-donut__swatch"), Style("background-color: "+s.Stroke)),
			Span(g.Textf("%s (%d%%)", s.Label, s.Percent())),
		)
	}

	return Div(
		Class("chart chart--donut"),
		Div(
			Class("chart-donut__ring"),
			svg(
				Class("chart-donut__svg"),
				g.Attr("viewBox", "0 0 100 100"),
				g.Attr("role", "img"),
				g.Attr("aria-label", "Distribución del engagement"),
				circle(
					g.Attr("cx", "50"),
					g.Attr("cy", "50"),
					g.Attr("r", num(c.Radius)),
					g.Attr("fill", "transparent"),
					g.Attr("stroke", c.Track),
					g.Attr("stroke-width", num(c.Width)),
				),
				g.Group(arcs),
			),
			Div(
				Class("chart-donut__center"),
				Span(Class("chart-donut__value"), animate(els[n], active), g.Text(c.Center)),
			),
		),
		Div(Class("chart-donut__legend"), g.Group(legend)),
	)
}
