// Package motion describes two-state (rest/active) animations declaratively.
//
// An Element carries the style of one animated node in each state together with
// the transitions the browser uses to interpolate between them. Nothing here
// steps frames; the CSS transition engine does the interpolation and reverses
// mid-flight when the state flips back.
package motion

import (
	"strconv"
	"strings"
	"time"
)

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of declarations.
type Style []Decl

// String renders the declarations as an inline style value.
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Important renders the declarations with !important so they win over inline styles.
func (s Style) Important() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value+" !important")
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of property, or "" when it is not declared.
func (s Style) Get(property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// Transition is one entry of a CSS transition list.
type Transition struct {
	Property string
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
}

// CSS renders the transition shorthand, e.g. "transform 0.3s ease-out 0.2s".
func (t Transition) CSS() string {
	s := t.Property + " " + Seconds(t.Duration) + " " + t.Easing.CSS()
	if t.Delay > 0 {
		s += " " + Seconds(t.Delay)
	}
	return s
}

// Seconds formats d the way CSS time values are usually written.
func Seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// Element is one animated node: a stable name, the declarations it always
// carries, the declarations for each state and the transitions between them.
type Element struct {
	Name        string
	Base        Style
	Rest        Style
	Active      Style
	Transitions []Transition
}

// State returns the state-dependent declarations.
func (e Element) State(active bool) Style {
	if active {
		return e.Active
	}
	return e.Rest
}

// TransitionCSS joins the element's transitions into a single value.
func (e Element) TransitionCSS() string {
	parts := make([]string, 0, len(e.Transitions))
	for _, t := range e.Transitions {
		parts = append(parts, t.CSS())
	}
	return strings.Join(parts, ", ")
}

// Inline is the full inline style for the element in the given state.
func (e Element) Inline(active bool) string {
	style := make(Style, 0, len(e.Base)+len(e.Rest)+1)
	style = append(style, e.Base...)
	style = append(style, e.State(active)...)
	if len(e.Transitions) > 0 {
		style = append(style, Decl{Property: "transition", Value: e.TransitionCSS()})
	}
	return style.String()
}

// LastStart reports when the element's latest transition starts.
func (e Element) LastStart() time.Duration {
	var last time.Duration
	for _, t := range e.Transitions {
		if t.Delay > last {
			last = t.Delay
		}
	}
	return last
}
