package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// FAQ renders each question as a details disclosure, so expand and collapse
// need no script.
func FAQ(site models.Site) g.Node {
	return Section(
		ID("faq"),
		Class("section section--faint"),
		Div(
			Class("container container--text"),
			SectionHeader("Preguntas Frecuentes", "", true),
			Div(Class("faq"), g.Group(g.Map(site.FAQs, faqItem))),
		),
	)
}

func faqItem(item models.FAQItem) g.Node {
	return Details(
		Class("faq__item"),
		Summary(
			Class("faq__question"),
			Span(g.Text(item.Question)),
			Span(Class("faq__toggle"), Icon("lucide:plus", "icon-md")),
		),
		P(Class("faq__answer"), g.Text(item.Answer)),
	)
}
