package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Bonus is the free-audit callout between testimonials and the FAQ.
func Bonus() g.Node {
	return Section(
		Class("section section--tight"),
		Div(
			Class("container container--narrow"),
			Div(
				Class("bonus"),
				Div(
					Class("bonus__inner"),
					Span(Class("bonus__tag"), g.Text("Bonus Exclusivo")),
					H3(Class("bonus__title"), g.Text("Agenda hoy y llévate una Auditoría Digital Gratis")),
					P(Class("bonus__text"), g.Text("Solo por agendar tu llamada estratégica, analizaremos tus redes actuales y te diremos exactamente dónde estás fallando antes de empezar.")),
					A(Class("button button--light"), Href("#agenda-llamada"), g.Text("Quiero mi auditoría")),
				),
			),
		),
	)
}

// CTA closes the page with the link to the external booking widget.
func CTA(bookingURL string) g.Node {
	return Section(
		ID("agenda-llamada"),
		Class("cta"),
		Div(Class("cta__bends"), g.Attr("aria-hidden", "true")),
		Div(
			Class("container container--narrow cta__content"),
			H2(
				Class("cta__title"),
				g.Text(`Deja de esperar el "golpe de suerte".`),
				Br(),
				Span(Class("text-accent"), g.Text("Constrúyelo con nosotros.")),
			),
			P(Class("cta__text"), g.Text("Si estás listo para dejar de ser el secreto mejor guardado y empezar a ser tendencia, hablemos.")),
			A(
				Class("button button--primary button--large"),
				External(bookingURL),
				Icon("lucide:calendar", "icon-md"),
				g.Text("Quiero mi consultoria ahora"),
			),
			P(Class("cta__note"), g.Text("Sin compromiso de compra. Solo estrategia pura.")),
		),
	)
}
