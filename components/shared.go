package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/metrics"
)

// Icon renders an iconify placeholder; name is "set:icon", e.g. "lucide:users".
func Icon(name, class string) g.Node {
	classes := "iconify"
	if class != "" {
		classes += " " + class
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// TikTokIcon is the inline TikTok logo; iconify has no matching glyph at this weight.
func TikTokIcon(class string) g.Node {
	return g.El("svg",
		Class(class),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", metrics.TikTokPath)),
	)
}

func SectionHeader(title, subtitle string, center bool) g.Node {
	classes := "section-header"
	if center {
		classes += " section-header--center"
	}
	return Div(
		Class(classes),
		H2(Class("section-header__title"), g.Text(title)),
		g.If(subtitle != "", P(Class("section-header__subtitle"), g.Text(subtitle))),
	)
}

func Card(class string, children ...g.Node) g.Node {
	classes := "card"
	if class != "" {
		classes += " " + class
	}
	return Div(Class(classes), g.Group(children))
}

// External opens href in a new tab without leaking the opener.
func External(href string) g.Node {
	return g.Group([]g.Node{
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
	})
}
