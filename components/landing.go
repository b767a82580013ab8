package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/metrics"
	"github.com/lppsite/models"
)

// Landing composes the whole page. The metrics hover rules are generated from
// the grid and inlined in the head.
func Landing(site models.Site, grid *metrics.Grid, year int) g.Node {
	return Layout(
		PageConfig{
			Title:       site.Title,
			Description: site.Description,
			OGImage:     site.OGImage,
			Head:        []g.Node{StyleEl(g.Attr("id", "metrics-motion"), g.Raw(grid.Stylesheet()))},
		},
		Topbar(site),
		Div(
			Class("aurora-wrap"),
			Div(Class("aurora"), g.Attr("aria-hidden", "true")),
			Hero(site),
			ProblemSolution(site),
		),
		Main(
			Services(site),
			Results(site, grid),
			Testimonials(site),
			Bonus(),
			FAQ(site),
			CTA(site.BookingURL),
		),
		PageFooter(site, year),
	)
}
