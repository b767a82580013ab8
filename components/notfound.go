package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// NotFound is the page served for unknown paths and unknown metric slugs.
func NotFound(site models.Site) g.Node {
	return Layout(
		PageConfig{Title: "Página no encontrada | " + site.Name},
		Topbar(site),
		Main(
			Section(
				Class("section section--tight"),
				Div(
					Class("container container--text"),
					SectionHeader("Página no encontrada", "El enlace que seguiste no existe o fue movido.", true),
					Div(
						Class("section-header--center"),
						A(Class("button button--primary"), Href("/"), g.Text("Volver al inicio")),
					),
				),
			),
		),
	)
}
