package metrics

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

// AreaChart draws audience retention as a filled region whose border is drawn
// in sync with the fill rising into place. The critical-point marker appears last.
type AreaChart struct {
	Geometry AreaPath
	Stroke   string
}

// NewAreaChart returns the retention chart with its fixed data.
func NewAreaChart() AreaChart {
	return AreaChart{Geometry: DefaultArea(), Stroke: "#ec4899"}
}

// Elements lists the fill, the border, the threshold marker and the caption.
func (c AreaChart) Elements() []motion.Element {
	return []motion.Element{
		{
			Name:   "area-fill",
			Rest:   css("opacity", "0", "transform", "translateY(10px)"),
			Active: css("opacity", "1", "transform", "translateY(0)"),
			Transitions: []motion.Transition{
				{Property: "opacity", Duration: 800 * time.Millisecond, Easing: motion.EaseOut},
				{Property: "transform", Duration: 800 * time.Millisecond, Easing: motion.EaseOut},
			},
		},
		{
			Name:   "area-border",
			Rest:   css("stroke-dashoffset", num(c.Geometry.BorderLength)),
			Active: css("stroke-dashoffset", "0"),
			Transitions: []motion.Transition{
				{Property: "stroke-dashoffset", Duration: time.Second, Easing: motion.EaseOut},
			},
		},
		{
			Name:   "area-threshold",
			Base:   css("top", num(c.Geometry.ThresholdTop*100)+"%"),
			Rest:   css("opacity", "0"),
			Active: css("opacity", "1"),
			Transitions: []motion.Transition{
				{Property: "opacity", Duration: 700 * time.Millisecond, Delay: 800 * time.Millisecond, Easing: motion.Ease},
			},
		},
		{
			Name:   "area-hook",
			Rest:   css("opacity", "0", "transform", "translateY(5px)"),
			Active: css("opacity", "1", "transform", "translateY(0)"),
			Transitions: []motion.Transition{
				{Property: "opacity", Duration: 500 * time.Millisecond, Delay: 400 * time.Millisecond, Easing: motion.Ease},
				{Property: "transform", Duration: 500 * time.Millisecond, Delay: 400 * time.Millisecond, Easing: motion.Ease},
			},
		},
	}
}

// Render draws the chart for the given state.
func (c AreaChart) Render(active bool) g.Node {
	els := c.Elements()
	geo := c.Geometry

	return Div(
		Class("chart chart--area"),
		Div(
			Class("chart-area__threshold"),
			animate(els[2], active),
			Span(Class("chart-area__threshold-label"), g.Text(geo.ThresholdLabel)),
		),
		Div(
			Class("chart-area__plot"),
			svg(
				Class("chart-area__svg"),
				g.Attr("viewBox", "0 0 "+num(geo.Width)+" "+num(geo.Height)),
				g.Attr("preserveAspectRatio", "none"),
				g.Attr("role", "img"),
				g.Attr("aria-label", "Retención de audiencia"),
				g.El("defs",
					g.El("linearGradient",
						ID("retentionGradient"),
						g.Attr("x1", "0"), g.Attr("x2", "0"), g.Attr("y1", "0"), g.Attr("y2", "1"),
						g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", c.Stroke), g.Attr("stop-opacity", "0.8")),
						g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", c.Stroke), g.Attr("stop-opacity", "0.05")),
					),
				),
				path(
					g.Attr("d", geo.FillPath()),
					g.Attr("fill", "url(#retentionGradient)"),
					animate(els[0], active),
				),
				path(
					g.Attr("d", geo.BorderPath()),
					g.Attr("fill", "none"),
					g.Attr("stroke", c.Stroke),
					g.Attr("stroke-width", "2"),
					g.Attr("stroke-dasharray", num(geo.BorderLength)),
					animate(els[1], active),
				),
			),
		),
		Div(Class("chart-axis chart-axis--quarters"), g.Group(g.Map(geo.Ticks, func(t string) g.Node {
			return Span(g.Text(t))
		}))),
		Div(
			Class("chart-area__hook"),
			animate(els[3], active),
			P(g.Text(`El "Hook" (Primeros 3s) es `), Span(Class("chart-area__hook-em"), g.Text("Vital"))),
		),
	)
}
