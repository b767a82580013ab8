package metrics

import (
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

func svg(children ...g.Node) g.Node { return g.El("svg", children...) }

func path(children ...g.Node) g.Node { return g.El("path", children...) }

func circle(children ...g.Node) g.Node { return g.El("circle", children...) }

// animate tags a node with its motion name and the inline style for the state.
func animate(e motion.Element, active bool) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-motion", e.Name),
		Style(e.Inline(active)),
	})
}

// num formats v with at most one decimal.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// upper matches the small-caps axis labels. A Caser is stateful, so one is
// built per call.
func upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

// css builds a style from property/value pairs.
func css(pairs ...string) motion.Style {
	s := make(motion.Style, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		s = append(s, motion.Decl{Property: pairs[i], Value: pairs[i+1]})
	}
	return s
}
