package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/models"
)

// Hero is the first screen: pitch on the left, muted looping video on the
// right. The audio button is wired by site.js.
func Hero(site models.Site) g.Node {
	h := site.Hero

	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero__grid"),
			Div(
				Class("hero__copy"),
				Div(
					Class("badge badge--live"),
					Span(Class("badge__dot")),
					Span(g.Text(h.Badge)),
				),
				H1(
					Class("hero__headline"),
					g.Text(h.Headline+" "),
					Span(Class("text-gradient"), g.Text(h.Highlight)),
				),
				P(Class("hero__description"), g.Text(h.Description)),
				Ul(Class("hero__benefits"), g.Group(g.Map(h.Benefits, func(b string) g.Node {
					return Li(
						Span(Class("hero__check"), Icon("lucide:check-circle-2", "icon-xs")),
						Span(g.Text(b)),
					)
				}))),
			),
			Div(
				Class("hero__media"),
				Div(Class("hero__laser"), g.Attr("aria-hidden", "true")),
				Div(Class("hero__glow"), g.Attr("aria-hidden", "true")),
				Div(
					Class("hero__video"),
					Video(
						ID("hero-video"),
						Src(h.VideoURL),
						g.Attr("muted"),
						g.Attr("loop"),
						g.Attr("playsinline"),
						g.Attr("autoplay"),
					),
					Div(Class("hero__video-shade"), g.Attr("aria-hidden", "true")),
					Button(
						Type("button"),
						Class("hero__audio"),
						g.Attr("data-audio-toggle", "hero-video"),
						g.Attr("aria-pressed", "false"),
						g.Attr("aria-label", "Activar sonido"),
						Icon("lucide:volume-x", "icon-md hero__audio-muted"),
						Icon("lucide:volume-2", "icon-md hero__audio-on"),
						Span(Class("hero__audio-label"), g.Text("Activar Audio")),
					),
				),
			),
		),
		Div(Class("hero__scroll"), g.Attr("aria-hidden", "true"), Icon("lucide:chevron-down", "icon-sm")),
	)
}
