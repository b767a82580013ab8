package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// Services is the bento grid of the four-step system. The spotlight follows
// the pointer through CSS custom properties set by site.js.
func Services(site models.Site) g.Node {
	return Section(
		ID("servicios"),
		Class("section section--dark"),
		Div(
			Class("container"),
			SectionHeader(
				"Más que influencers, una maquinaria de crecimiento",
				"Un sistema completo de 4 pasos para garantizar que tu campaña tenga impacto real.",
				true,
			),
			Div(Class("bento"), g.Attr("data-spotlight"), g.Group(g.Map(site.Services, bentoCard))),
		),
	)
}

func bentoCard(s models.Service) g.Node {
	return Article(
		Class("bento__card bento__card--"+s.Accent),
		Div(
			Class("bento__top"),
			Span(Class("bento__label"), g.Text(s.Label)),
			Span(Class("bento__step"), g.Textf("0%d", s.ID)),
		),
		Div(Class("bento__icon"), Icon(s.Icon, "icon-lg")),
		H3(Class("bento__title"), g.Text(s.Title)),
		P(Class("bento__description"), g.Text(s.Description)),
	)
}
