// Package metrics renders the hover-activated metrics grid of the landing page.
//
// Each Card owns a single activation flag. Renderers are pure functions of that
// flag: they describe the rest and active visual state of every animated node
// and leave interpolation to CSS transitions.
package metrics

import (
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lppsite/motion"
)

// Renderer draws a card body for the given activation state.
type Renderer interface {
	Render(active bool) g.Node
}

// Choreographer is implemented by renderers whose animated nodes can be
// listed, so hover rules can be generated for them.
type Choreographer interface {
	Elements() []motion.Element
}

// Card is a titled container around a renderer. It is inactive when created
// and flips synchronously on Enter and Leave.
type Card struct {
	Slug     string
	Title    string
	Subtitle string

	renderer Renderer
	active   bool
}

// NewCard returns an inactive card.
func NewCard(slug, title, subtitle string, r Renderer) *Card {
	return &Card{Slug: slug, Title: title, Subtitle: subtitle, renderer: r}
}

// Enter marks the pointer as over the card.
func (c *Card) Enter() { c.active = true }

// Leave marks the pointer as gone.
func (c *Card) Leave() { c.active = false }

// Active reports the activation flag.
func (c *Card) Active() bool { return c.active }

// Renderer returns the strategy that draws the card body.
func (c *Card) Renderer() Renderer { return c.renderer }

// Href is the path of the card's data view.
func (c *Card) Href() string { return "/metricas/" + c.Slug }

// Render writes the card markup, making *Card a gomponents node.
func (c *Card) Render(w io.Writer) error {
	return c.node().Render(w)
}

func (c *Card) node() g.Node {
	return Article(
		Class("metric-card"),
		ID("metrica-"+c.Slug),
		g.Attr("data-metric", c.Slug),
		g.Attr("data-active", strconv.FormatBool(c.active)),
		Div(
			Class("metric-card__header"),
			tiktokGlyph(),
			Div(
				Class("metric-card__titles"),
				H3(Class("metric-card__title"), g.Text(c.Title)),
				g.If(c.Subtitle != "", P(Class("metric-card__subtitle"), g.Text(c.Subtitle))),
			),
			A(Class("metric-card__link"), Href(c.Href()), g.Attr("aria-label", "Ver datos: "+c.Title), g.Text("Ver datos")),
		),
		Div(Class("metric-card__body"), c.renderer.Render(c.active)),
	)
}

// Slugs of the four cards, in grid order.
const (
	SlugViews      = "visualizaciones"
	SlugEngagement = "engagement"
	SlugReplies    = "replicas"
	SlugRetention  = "retencion"
)

// Grid is the fixed set of four independent cards.
type Grid struct {
	cards []*Card
}

// NewGrid builds the four metric cards, all at rest.
func NewGrid() *Grid {
	return &Grid{cards: []*Card{
		NewCard(SlugViews, "Visualizaciones Diarias", "", NewLineChart()),
		NewCard(SlugEngagement, "Distribución del Engagement Total", "", NewDonutChart()),
		NewCard(SlugReplies, "Réplicas Generadas por Semana", "Indicador de Viralidad", NewBarChart()),
		NewCard(SlugRetention, "Retención de Audiencia", "", NewAreaChart()),
	}}
}

// Cards returns the cards in grid order.
func (gr *Grid) Cards() []*Card { return gr.cards }

// Card returns the card at index i, or nil when i is out of range.
func (gr *Grid) Card(i int) *Card {
	if i < 0 || i >= len(gr.cards) {
		return nil
	}
	return gr.cards[i]
}

// Lookup finds a card by slug.
func (gr *Grid) Lookup(slug string) (*Card, bool) {
	for _, c := range gr.cards {
		if c.Slug == slug {
			return c, true
		}
	}
	return nil, false
}

// Enter activates card i. Out-of-range indexes are ignored.
func (gr *Grid) Enter(i int) {
	if c := gr.Card(i); c != nil {
		c.Enter()
	}
}

// Leave deactivates card i. Out-of-range indexes are ignored.
func (gr *Grid) Leave(i int) {
	if c := gr.Card(i); c != nil {
		c.Leave()
	}
}

// ActiveSet returns the activation flag of every card, in order.
func (gr *Grid) ActiveSet() []bool {
	out := make([]bool, len(gr.cards))
	for i, c := range gr.cards {
		out[i] = c.Active()
	}
	return out
}

// Render writes the two-column grid.
func (gr *Grid) Render(w io.Writer) error {
	nodes := make([]g.Node, len(gr.cards))
	for i, c := range gr.cards {
		nodes[i] = c
	}
	return Div(Class("metrics-grid"), g.Group(nodes)).Render(w)
}

func tiktokGlyph() g.Node {
	return g.El("svg",
		Class("metric-card__glyph"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "white"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", TikTokPath)),
	)
}

// TikTokPath is the outline of the TikTok logo, 24x24.
const TikTokPath = "M19.59 6.69a4.83 4.83 0 0 1-3.77-4.25V2h-3.45v13.67a2.89 2.89 0 0 1-5.2 1.74 2.89 2.89 0 0 1 2.31-4.64 2.93 2.93 0 0 1 .88.13V9.4a6.84 6.84 0 0 0-1-.05A6.33 6.33 0 0 0 5 20.1a6.34 6.34 0 0 0 10.86-4.43v-7a8.16 8.16 0 0 0 4.77 1.52v-3.4a4.85 4.85 0 0 1-1-.1z"
