package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

func Testimonials(site models.Site) g.Node {
	return Section(
		ID("testimonios"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("Lo que dicen los que ya dieron el salto", "", true),
			Div(Class("testimonials"), g.Group(g.Map(site.Testimonials, testimonialCard))),
		),
	)
}

func testimonialCard(t models.Testimonial) g.Node {
	return Card("testimonial",
		Div(Class("testimonial__mark"), g.Attr("aria-hidden", "true"), g.Text(`"`)),
		g.El("blockquote", Class("testimonial__quote"), g.Text(t.Quote)),
		Div(
			Class("testimonial__footer"),
			Div(
				Div(Class("testimonial__name"), g.Text(t.Name)),
				Div(Class("testimonial__role"), g.Text(t.Role)),
			),
			Div(Class("testimonial__result"), g.Text(t.Result)),
		),
	)
}
