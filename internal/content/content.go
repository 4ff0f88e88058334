// Package content holds the marketing copy rendered on the landing page.
package content

type Link struct {
	Label string
	Href  string
}

type Stat struct {
	Value string
	Label string
}

// Card is a titled block with an icon, used by services and approach steps.
type Card struct {
	Icon  Icon
	Title string
	Body  string
}

type OutcomeGroup struct {
	Title  string
	Points []string
}

type Program struct {
	Badge   string
	Title   string
	Summary string
	Points  []string
	CTA     Link
}

type Resource struct {
	Title       string
	Description string
}

type Section struct {
	ID      string
	Heading string
	Lead    string
}

type Brand struct {
	Name     string
	Tagline  string
	Summary  string
	Email    string
	Phone    string
	Location string
	City     string
	Country  string
}

type Hero struct {
	Pills     []Pill
	Headline  string
	Lead      string
	Primary   Link
	Secondary Link
	Video     Link
	Stats     []Stat
}

type Pill struct {
	Icon  Icon
	Label string
}

type About struct {
	Section
	Values       []string
	PromiseTitle string
	PromiseBody  string
	PromiseStats []Stat
}

type Contact struct {
	Section
	Privacy       string
	Newsletter    string
	NewsletterTag string
}

type FooterColumn struct {
	Title string
	Links []Link
}

// Site is the full page copy in render order.
type Site struct {
	Brand       Brand
	Nav         []Link
	CTA         Link
	Hero        Hero
	SocialProof string
	Clients     []string
	Services    Section
	ServiceList []Card
	Approach    Section
	Steps       []Card
	Outcomes    Section
	OutcomeList []OutcomeGroup
	Programs    Section
	ProgramList []Program
	Resources   Section
	Library     []Resource
	About       About
	Contact     Contact
	Footer      []FooterColumn
}

// RequiredSectionIDs lists the anchors the navigation links to.
var RequiredSectionIDs = []string{"services", "approach", "outcomes", "programs", "resources", "about", "contact"}

// EstimatorID is the element id of the savings estimator card.
const EstimatorID = "agency-calc"
