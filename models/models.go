package models

// NavItem is an in-page anchor of the navigation bar.
type NavItem struct {
	Label string
	Href  string
}

// Service is one card of the services showcase.
type Service struct {
	ID          int
	Label       string
	Title       string
	Description string
	Icon        string // iconify name, e.g. "lucide:users"
	Accent      string
}

// Testimonial is a client quote with the result it produced.
type Testimonial struct {
	ID     int
	Name   string
	Role   string
	Quote  string
	Result string
}

// FAQItem is one question of the accordion.
type FAQItem struct {
	Question string
	Answer   string
}

// Stat is a headline number of the results section.
type Stat struct {
	Value string
	Label string
	Icon  string
}

// SocialLink is a footer profile link.
type SocialLink struct {
	Name  string
	Href  string
	Image string
}

// Hero holds the copy and media of the first screen.
type Hero struct {
	Badge       string
	Headline    string
	Highlight   string
	Description string
	Benefits    []string
	VideoURL    string
}

// Narrative is one half of the problem/solution section.
type Narrative struct {
	Tag     string
	Heading string
	Body    []string
	Callout string
	Lead    string
	Points  []string
}

// Site is the whole static content of the landing page.
type Site struct {
	Name        string
	Title       string
	Description string
	LogoURL     string
	OGImage     string
	BookingURL  string
	ReportImage string

	Nav          []NavItem
	Hero         Hero
	Problem      Narrative
	Solution     Narrative
	Services     []Service
	Stats        []Stat
	Testimonials []Testimonial
	FAQs         []FAQItem
	Socials      []SocialLink
}
