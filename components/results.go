package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// Results pairs the headline stats with the metrics grid and the sample report.
func Results(site models.Site, grid g.Node) g.Node {
	return Section(
		ID("resultados"),
		Class("section section--muted"),
		Div(
			Class("container results"),
			Div(
				Class("results__intro"),
				SectionHeader(
					"Resultados que pagan las facturas",
					"Deja de medir likes vacíos. Nosotros nos enfocamos en métricas que mueven tu carrera o negocio.",
					false,
				),
				Div(Class("results__stats"), g.Group(g.Map(site.Stats, statRow))),
			),
			Div(
				Class("results__detail"),
				Div(
					Class("results__metrics"),
					H3(
						Class("results__metrics-title"),
						Icon("lucide:trending-up", "icon-md text-accent"),
						g.Text("Análisis Detallado de Métricas"),
					),
					grid,
				),
				Div(
					Class("results__report"),
					Div(
						Class("results__report-frame"),
						Img(Src(site.ReportImage), Alt("Dashboard de métricas"), g.Attr("loading", "lazy")),
					),
				),
			),
		),
	)
}

func statRow(s models.Stat) g.Node {
	var icon g.Node
	if s.Icon == "tiktok" {
		icon = Div(Class("stat__icon stat__icon--tiktok"), TikTokIcon("icon-md"))
	} else {
		icon = Div(Class("stat__icon"), Icon(s.Icon, "icon-md"))
	}
	return Div(
		Class("stat"),
		icon,
		Div(
			Div(Class("stat__value"), g.Text(s.Value)),
			Div(Class("stat__label"), g.Text(s.Label)),
		),
	)
}
