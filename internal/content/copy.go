package content

// Icon names a glyph from the page icon set.
type Icon string

const (
	IconArrowRight Icon = "arrow-right"
	IconBookOpen   Icon = "book-open"
	IconBrain      Icon = "brain"
	IconCheck      Icon = "check"
	IconCog        Icon = "cog"
	IconCompass    Icon = "compass"
	IconGauge      Icon = "gauge"
	IconHammer     Icon = "hammer"
	IconLayers     Icon = "layers"
	IconLeaf       Icon = "leaf"
	IconLineChart  Icon = "line-chart"
	IconMail       Icon = "mail"
	IconMapPin     Icon = "map-pin"
	IconPhone      Icon = "phone"
	IconPlayCircle Icon = "play-circle"
	IconShield     Icon = "shield"
	IconUsers      Icon = "users"
)

// Default returns the Guild & Grove landing page copy.
func Default() Site {
	return Site{
		Brand: Brand{
			Name:     "Guild & Grove",
			Tagline:  "Grow in-house hiring mastery",
			Summary:  "People-strategy advisory that designs, builds, and upskills in-house recruitment so you hire better—without agencies.",
			Email:    "hello@guildandgrove.com",
			Phone:    "+44 XX XXXX XXXX",
			Location: "London, United Kingdom",
			City:     "London",
			Country:  "GB",
		},
		Nav: []Link{
			{Label: "Services", Href: "#services"},
			{Label: "Approach", Href: "#approach"},
			{Label: "Outcomes", Href: "#outcomes"},
			{Label: "Programs", Href: "#programs"},
			{Label: "Resources", Href: "#resources"},
			{Label: "About", Href: "#about"},
			{Label: "Contact", Href: "#contact"},
		},
		CTA: Link{Label: "Book a Free Recruitment Audit", Href: "#contact"},
		Hero: Hero{
			Pills: []Pill{
				{Icon: IconShield, Label: "Governed & fair"},
				{Icon: IconGauge, Label: "Measured improvement"},
				{Icon: IconUsers, Label: "Capability > dependency"},
			},
			Headline:  "Build a self-sustaining recruitment engine.",
			Lead:      "We help you design the system, train the people, and govern the outcomes—so hiring becomes a strategic advantage.",
			Primary:   Link{Label: "Book a Free Recruitment Audit", Href: "#contact"},
			Secondary: Link{Label: "Explore Our Operating Model", Href: "#services"},
			Video:     Link{Label: "See a 90-second overview", Href: "#video"},
			Stats: []Stat{
				{Value: "30–50%", Label: "Faster time-to-hire in 2 quarters"},
				{Value: "40–70%", Label: "Agency spend reduction (Yr 1)"},
				{Value: "15–25pts", Label: "↑ Hiring Manager NPS"},
			},
		},
		SocialProof: "Trusted by people-first teams to hire 3× faster",
		Clients:     []string{"Northbridge Capital", "Atlas Health", "Keystone Tech", "Stratum FinOps", "Vector Labs"},
		Services: Section{
			ID:      "services",
			Heading: "Services",
			Lead:    "Strategy-first, non-agency support. We build capability, not dependency.",
		},
		ServiceList: []Card{
			{Icon: IconLayers, Title: "Operating Model & Process Design", Body: "Role charters, RACI, structured intake, interviewing discipline, decision rights, offer stages, SLAs—codified and adopted."},
			{Icon: IconHammer, Title: "Recruitment-in-a-Box (90 days)", Body: "Stand up an in-house function fast: ATS setup, templates, playbooks, interview kits, and hiring-manager training."},
			{Icon: IconBookOpen, Title: "Capability Uplift", Body: "Recruiter academies and hiring-manager certification—sourcing, assessment, and employer brand in modern practice."},
			{Icon: IconShield, Title: "Data & Governance", Body: "Metrics pack (TTH, quality-of-hire, funnel diagnostics), DEI safeguards, and compliance aligned to your regions."},
			{Icon: IconLineChart, Title: "Continuous Optimization", Body: "Quarterly audits, retros, experiments, and coach-alongside support to keep outcomes improving."},
			{Icon: IconBrain, Title: "Advisory on Change & Adoption", Body: "Human-centered change so new ways of working actually stick—playbooks to practice to performance."},
		},
		Approach: Section{
			ID:      "approach",
			Heading: "Approach",
			Lead:    "Diagnose → Design → Enable → Govern. We leave you with skills, not dependencies.",
		},
		Steps: []Card{
			{Icon: IconCompass, Title: "Diagnose", Body: "Baseline metrics, process map, pain points, and benchmarks."},
			{Icon: IconLayers, Title: "Design", Body: "Operating model, governance, toolchain, interview architecture."},
			{Icon: IconUsers, Title: "Enable", Body: "Training, coaching, and change management for adoption."},
			{Icon: IconCog, Title: "Govern", Body: "SLAs, dashboards, reviews, and iteration cadence."},
		},
		Outcomes: Section{
			ID:      "outcomes",
			Heading: "Outcomes",
			Lead:    "What we measure and improve—then hand over for you to own.",
		},
		OutcomeList: []OutcomeGroup{
			{Title: "Speed & Quality", Points: []string{"30–50% cut in time-to-hire in 2 quarters", "Higher offer-acceptance and 1st-year retention"}},
			{Title: "Spend", Points: []string{"40–70% reduction in agency costs (Yr 1)", "Right-size internal team with governance"}},
			{Title: "Experience & Trust", Points: []string{"+15–25 pt Hiring Manager NPS", "Bias-aware, compliant, consistent decisions"}},
		},
		Programs: Section{
			ID:      "programs",
			Heading: "Programs",
			Lead:    "Choose the engagement that fits your stage and scale.",
		},
		ProgramList: []Program{
			{
				Badge:   "Lead-in",
				Title:   "Free Recruitment Audit",
				Summary: "60-minute review + 1-page findings: bottlenecks, quick wins, and a prioritized roadmap.",
				Points:  []string{"Process map & funnel snapshot", "Top 5 interventions", "Baseline KPI pack template"},
				CTA:     Link{Label: "Claim your audit", Href: "#contact"},
			},
			{
				Badge:   "Project",
				Title:   "Core Transformation (6–12 weeks)",
				Summary: "Diagnose, Design, Enable. Stand-up or overhaul your in-house function with measurable SLAs.",
				Points:  []string{"Operating model & governance", "ATS configuration & templates", "Training & adoption sprint"},
				CTA:     Link{Label: "Start a project", Href: "#contact"},
			},
			{
				Badge:   "Retainer",
				Title:   "Quarterly Stewardship",
				Summary: "Ongoing metrics reviews, experiments, and coaching to sustain and extend gains.",
				Points:  []string{"Quarterly audits & roadmap", "Experiment cycles", "Coach-alongside sessions"},
				CTA:     Link{Label: "Talk retainers", Href: "#contact"},
			},
		},
		Resources: Section{
			ID:      "resources",
			Heading: "Resources",
			Lead:    "Playbooks, templates, and case notes to put mastery into practice.",
		},
		Library: []Resource{
			{Title: "Structured Interview Kit", Description: "Role scorecards, questions, rubrics, and decision logs."},
			{Title: "Recruitment Metrics Pack", Description: "Dashboards for TTH, funnel, quality-of-hire, and NPS."},
			{Title: "Operating Model Blueprint", Description: "RACI, SLAs, intake flow, and governance cadence."},
		},
		About: About{
			Section: Section{
				ID:      "about",
				Heading: "About Guild & Grove",
				Lead:    "We’re a people-strategy advisory focused on building in-house recruitment capability. We bring operating discipline, practical training, and governance so teams hire faster, fairer, and more cost-effectively—sustainably.",
			},
			Values: []string{
				"Capability over dependency",
				"Governed & fair hiring",
				"Measured improvement with dashboards & SLAs",
				"Human-centered change and adoption",
			},
			PromiseTitle: "Our Promise",
			PromiseBody:  "We work transparently and leave behind capability: playbooks, trained people, and dashboards you own.",
			PromiseStats: []Stat{
				{Value: "90 days", Label: "Stand-up window"},
				{Value: "100%", Label: "Structured interviews"},
				{Value: "48 hrs", Label: "Feedback SLA"},
			},
		},
		Contact: Contact{
			Section: Section{
				ID:      "contact",
				Heading: "Book a Free Recruitment Audit",
				Lead:    "Tell us about your hiring goals. We’ll review your process, surface quick wins, and map a path to in-house mastery.",
			},
			Privacy:       "By submitting, you agree to our privacy policy.",
			Newsletter:    "Newsletter",
			NewsletterTag: "Insights on strategic hiring—monthly. No spam.",
		},
		Footer: []FooterColumn{
			{Title: "Company", Links: []Link{
				{Label: "Services", Href: "#services"},
				{Label: "Approach", Href: "#approach"},
				{Label: "Outcomes", Href: "#outcomes"},
				{Label: "Programs", Href: "#programs"},
			}},
			{Title: "Resources", Links: []Link{
				{Label: "Playbooks", Href: "#resources"},
				{Label: "Templates", Href: "#resources"},
				{Label: "Case notes", Href: "#resources"},
			}},
			{Title: "Contact", Links: []Link{
				{Label: "hello@guildandgrove.com", Href: "mailto:hello@guildandgrove.com"},
				{Label: "Book a free audit", Href: "#contact"},
				{Label: "Newsletter", Href: "#contact"},
			}},
		},
	}
}
