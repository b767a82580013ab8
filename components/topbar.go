package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// Topbar is the fixed navigation bar. site.js adds is-scrolled past 50px and drives the
// mobile menu; without script the menu falls back to a details disclosure.
func Topbar(site models.Site) g.Node {
	return Header(
		Class("site-nav"),
		g.Attr("data-scroll-threshold", "50"),
		Nav(
			Class("site-nav__bar"),
			g.Attr("aria-label", "Principal"),
			A(
				Class("site-nav__logo"),
				Href("#"),
				Img(Src(site.LogoURL), Alt(site.Name+" Logo")),
			),
			Div(Class("site-nav__links"), g.Group(g.Map(site.Nav, func(item models.NavItem) g.Node {
				return A(Class("site-nav__link"), Href(item.Href), g.Text(item.Label))
			}))),
			A(
				Class("button button--light site-nav__cta"),
				Href("#agenda-llamada"),
				Span(g.Text("Consultoria gratis")),
				Icon("lucide:calendar", "icon-sm"),
			),
			Details(
				Class("site-nav__mobile"),
				Summary(
					Class("site-nav__toggle"),
					g.Attr("aria-label", "Abrir menú"),
					Icon("lucide:menu", "icon-md site-nav__icon-open"),
					Icon("lucide:x", "icon-md site-nav__icon-close"),
				),
				Div(
					Class("site-nav__sheet"),
					g.Group(g.Map(site.Nav, func(item models.NavItem) g.Node {
						return A(Class("site-nav__sheet-link"), Href(item.Href), g.Text(item.Label))
					})),
					A(Class("button button--primary button--block"), Href("#agenda-llamada"), g.Text("Consultoria gratis")),
				),
			),
		),
	)
}
