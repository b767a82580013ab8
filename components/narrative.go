package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// ProblemSolution shows the pains next to the promised transformation. The
// headings reveal on scroll; see Reveal.
func ProblemSolution(site models.Site) g.Node {
	p, s := site.Problem, site.Solution

	return Section(
		Class("narrative"),
		Div(
			Class("container narrative__panel"),
			Div(
				Class("narrative__side narrative__side--problem"),
				Div(Class("tag tag--danger"), g.Text(p.Tag)),
				Reveal(p.Heading, 5),
				Div(
					Class("narrative__body"),
					g.Group(g.Map(p.Body, func(line string) g.Node { return P(g.Text(line)) })),
					g.If(p.Callout != "", P(Class("narrative__callout"), g.Text(p.Callout))),
				),
				g.If(p.Lead != "", P(Class("narrative__lead"), g.Text("❌ "+p.Lead))),
				Ul(Class("narrative__list"), g.Group(g.Map(p.Points, func(point string) g.Node {
					return Li(Span(Class("narrative__cross"), g.Text("✕")), Span(g.Text(point)))
				}))),
			),
			Div(
				Class("narrative__side narrative__side--solution"),
				Div(Class("tag tag--success"), g.Text(s.Tag)),
				Reveal(s.Heading, -5),
				Div(
					Class("narrative__body"),
					g.Group(g.Map(s.Body, func(line string) g.Node { return P(g.Text(line)) })),
				),
				Ul(Class("narrative__list narrative__list--gains"), g.Group(g.Map(s.Points, func(point string) g.Node {
					return Li(Icon("lucide:check-circle-2", "icon-sm text-success"), Span(g.Text(point)))
				}))),
			),
		),
	)
}

// Reveal renders a heading whose words unblur and straighten as it scrolls
// into view. Without script it renders as plain text.
func Reveal(text string, rotation int) g.Node {
	return H3(
		Class("reveal"),
		g.Attr("data-reveal"),
		Style("--reveal-rotation: "+strconv.Itoa(rotation)+"deg"),
		g.Text(text),
	)
}
