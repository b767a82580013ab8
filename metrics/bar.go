package metrics

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

// labelLag is how long after its bar starts growing a value label fades in.
const labelLag = 500 * time.Millisecond

// BarChart draws the weekly replies as bars that grow from the bottom with an
// overshooting curve.
type BarChart struct {
	Bars []Bar
}

// NewBarChart returns the replies chart with its fixed data.
func NewBarChart() BarChart {
	return BarChart{Bars: DefaultBars()}
}

// LabelDelay is when the value label of bar b starts fading in.
func (b Bar) LabelDelay() time.Duration { return b.Delay + labelLag }

// Elements lists one fill per bar followed by one value label per bar.
func (ch BarChart) Elements() []motion.Element {
	els := make([]motion.Element, 0, 2*len(ch.Bars))
	for i, b := range ch.Bars {
		els = append(els, motion.Element{
			Name:   fmt.Sprintf("bar-fill-%d", i+1),
			Base:   css("transform-origin", "bottom"),
			Rest:   css("transform", "scaleY(0)"),
			Active: css("transform", "scaleY(1)"),
			Transitions: []motion.Transition{
				{Property: "transform", Duration: 600 * time.Millisecond, Delay: b.Delay, Easing: motion.Overshoot},
			},
		})
	}
	for i, b := range ch.Bars {
		els = append(els, motion.Element{
			Name:   fmt.Sprintf("bar-value-%d", i+1),
			Rest:   css("opacity", "0"),
			Active: css("opacity", "1"),
			Transitions: []motion.Transition{
				{Property: "opacity", Duration: 500 * time.Millisecond, Delay: b.LabelDelay(), Easing: motion.Ease},
			},
		})
	}
	return els
}

// Render draws the chart for the given state.
func (ch BarChart) Render(active bool) g.Node {
	els := ch.Elements()
	n := len(ch.Bars)

	columns := make([]g.Node, n)
	for i, b := range ch.Bars {
		columns[i] = Div(
			c.Classes{"chart-bar__column": true, "chart-bar__column--highlight": b.Highlight},
			Span(Class("chart-bar__value"), animate(els[n+i], active), g.Text(strconv.Itoa(b.Value))),
			Div(
				Class("chart-bar__track"),
				Style("height: "+strconv.Itoa(b.Height)+"px"),
				Div(Class("chart-bar__fill"), animate(els[i], active)),
			),
			Span(Class("chart-bar__week"), g.Text(upper(b.Week))),
		)
	}

	return Div(
		Class("chart chart--bar"),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Réplicas generadas por semana"),
		g.Group(columns),
	)
}
