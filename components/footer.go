package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

func PageFooter(site models.Site, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container site-footer__top"),
			Div(
				Class("site-footer__brand"),
				Div(
					Class("site-footer__logo"),
					Img(Src(site.LogoURL), Alt(site.Name+" Logo")),
					Span(g.Text(site.Name)),
				),
				P(g.Text("Agencia especializada en campañas con influencers para artistas y marcas que buscan impacto real.")),
			),
			Div(Class("site-footer__social"), g.Group(g.Map(site.Socials, func(s models.SocialLink) g.Node {
				return A(
					Class("site-footer__social-link"),
					External(s.Href),
					g.Attr("aria-label", s.Name),
					Img(Src(s.Image), Alt(s.Name), g.Attr("loading", "lazy")),
				)
			}))),
		),
		Div(
			Class("container site-footer__legal"),
			g.Text("© "+strconv.Itoa(year)+" "+site.Name+". Todos los derechos reservados."),
		),
	)
}
