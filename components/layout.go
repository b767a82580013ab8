package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// Head is appended to the document head, e.g. generated styles.
	Head []g.Node
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "LPP Media"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("es"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;700&family=Space+Grotesk:wght@500;700&display=swap")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				g.Group(config.Head),
			),
			Body(
				Class("site"),
				g.Group(content),

				Script(Src("/static/js/site.js"), g.Attr("defer")),
			),
		),
	})
}
