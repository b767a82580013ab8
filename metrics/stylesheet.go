package metrics

import (
	"fmt"
	"strings"

	"github.com/lppsite/motion"
)

// Stylesheet generates the rules that move every animated node to its active
// state while the pointer is over its card (or the card is marked active),
// rules that return cards rendered active to rest once they are released, and
// a reduced-motion fallback that shows the final state without motion.
func (gr *Grid) Stylesheet() string {
	var els []motion.Element
	for _, c := range gr.cards {
		if ch, ok := c.Renderer().(Choreographer); ok {
			els = append(els, ch.Elements()...)
		}
	}
	return stylesheet(els)
}

func stylesheet(els []motion.Element) string {
	var b strings.Builder

	for _, e := range els {
		sel := motionSelector(e.Name)
		fmt.Fprintf(&b, ".metric-card:hover %s,\n.metric-card[data-active=\"true\"] %s {\n  %s;\n}\n",
			sel, sel, e.Active.Important())
	}

	// A card rendered active inline (the ?activo= preview) falls back to rest
	// once it is neither hovered nor marked active.
	b.WriteString("@media (prefers-reduced-motion: no-preference) {\n")
	for _, e := range els {
		if len(e.Rest) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  .metric-card[data-active=\"false\"]:not(:hover) %s { %s; }\n",
			motionSelector(e.Name), e.Rest.Important())
	}
	b.WriteString("}\n")

	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	b.WriteString("  [data-motion] { transition: none !important; }\n")
	for _, e := range els {
		fmt.Fprintf(&b, "  %s { %s; }\n", motionSelector(e.Name), e.Active.Important())
	}
	b.WriteString("}\n")

	return b.String()
}

func motionSelector(name string) string {
	return `[data-motion="` + name + `"]`
}
