package category

import "planpilot/internal/types"

// TemplatesFor returns the ordered section templates for a category. The
// returned slice is a copy; callers may not mutate the underlying table.
func TemplatesFor(cat types.Category) []types.SectionTemplate {
	var source []types.SectionTemplate
	switch cat {
	case types.CategoryEstablished:
		source = establishedTemplates
	case types.CategoryScaleUp:
		source = scaleUpTemplates
	default:
		source = newCompanyTemplates
	}

	templates := make([]types.SectionTemplate, len(source))
	copy(templates, source)
	return templates
}

var newCompanyTemplates = []types.SectionTemplate{
	{
		Title: "Executive Summary",
		SubsectionPrompts: []string{
			"Summarize the business concept in two or three sentences",
			"State the problem being solved and for whom",
			"Describe the proposed solution and what makes it different",
			"Outline the funding or resources needed to launch",
		},
	},
	{
		Title: "Company Description",
		SubsectionPrompts: []string{
			"Describe the legal structure and ownership",
			"State the mission and vision",
			"Explain why this location was chosen",
			"List short-term and long-term objectives",
		},
	},
	{
		Title: "Market Analysis",
		SubsectionPrompts: []string{
			"Estimate the size of the target market in this location",
			"Describe the ideal customer profile",
			"Identify the main local and online competitors",
			"Summarize relevant market trends and growth projections",
			"Explain the market gap this business fills",
		},
	},
	{
		Title: "Products and Services",
		SubsectionPrompts: []string{
			"Describe each product or service offered at launch",
			"Explain the pricing approach and how it compares to competitors",
			"Identify suppliers or production requirements",
			"Describe plans for future products or services",
		},
	},
	{
		Title: "Marketing and Sales Strategy",
		SubsectionPrompts: []string{
			"Describe how the first customers will be reached",
			"Outline the channels to be used and why",
			"Explain the brand positioning and messaging",
			"Describe the sales process from first contact to purchase",
			"Set measurable marketing goals for the first year",
		},
	},
	{
		Title: "Operations Plan",
		SubsectionPrompts: []string{
			"Describe the day-to-day operations and who runs them",
			"List the equipment, premises, and technology required",
			"Identify key suppliers and logistics arrangements",
			"Describe quality control and customer service processes",
		},
	},
	{
		Title: "Management and Organization",
		SubsectionPrompts: []string{
			"Describe the founding team and their relevant experience",
			"Show the planned organizational structure",
			"Identify skill gaps and hiring plans for the first year",
			"Describe advisors, mentors, or board members",
		},
	},
	{
		Title: "Financial Plan",
		SubsectionPrompts: []string{
			"Estimate startup costs and initial capital requirements",
			"Project revenue for the first three years",
			"Project monthly operating expenses",
			"Estimate the break-even point",
			"Describe funding sources and how funds will be used",
		},
	},
	{
		Title: "Milestones and Risk Assessment",
		SubsectionPrompts: []string{
			"List launch milestones with target dates",
			"Identify the biggest risks to the launch",
			"Describe mitigation plans for each major risk",
			"Define the metrics that will signal success or failure",
		},
	},
}

var scaleUpTemplates = []types.SectionTemplate{
	{
		Title: "Executive Summary",
		SubsectionPrompts: []string{
			"Summarize the business, its traction, and the growth opportunity",
			"State current revenue and customer metrics",
			"Describe the expansion goal and the capital or resources required",
			"Summarize why the business is positioned to scale now",
		},
	},
	{
		Title: "Growth Strategy",
		SubsectionPrompts: []string{
			"Define the target growth rate and time horizon",
			"Identify new markets, segments, or locations to enter",
			"Describe product or service line extensions planned",
			"Explain the sequencing of growth initiatives",
			"Identify partnerships or acquisitions that accelerate growth",
		},
	},
	{
		Title: "Market Expansion Analysis",
		SubsectionPrompts: []string{
			"Size the expansion markets and their growth rates",
			"Compare the competitive landscape in each new market",
			"Describe localization or regulatory requirements",
			"Assess cannibalization or channel-conflict risks",
		},
	},
	{
		Title: "Scaling Operations",
		SubsectionPrompts: []string{
			"Identify operational bottlenecks at current volume",
			"Describe infrastructure and tooling investments needed",
			"Explain how unit economics change with scale",
			"Describe supply chain or capacity expansion plans",
			"Outline process standardization and automation plans",
		},
	},
	{
		Title: "Team and Organizational Development",
		SubsectionPrompts: []string{
			"Describe the current team and leadership structure",
			"Identify key hires needed for the next stage",
			"Describe how culture and quality are maintained while growing",
			"Outline compensation and retention strategy",
		},
	},
	{
		Title: "Customer Acquisition and Retention",
		SubsectionPrompts: []string{
			"Report current acquisition costs and channels",
			"Describe how acquisition scales without degrading economics",
			"Explain the retention and expansion-revenue strategy",
			"Define the customer metrics tracked at scale",
		},
	},
	{
		Title: "Financial Projections",
		SubsectionPrompts: []string{
			"Project revenue and margin for the next three years",
			"Model the cost of the growth plan",
			"State the capital required and intended use of funds",
			"Project cash flow through the expansion period",
			"Describe the path to profitability or improved margins",
		},
	},
	{
		Title: "Risk Management",
		SubsectionPrompts: []string{
			"Identify the risks specific to rapid growth",
			"Describe operational and financial controls being added",
			"Assess key-person and concentration risks",
			"Describe contingency plans if growth underperforms",
		},
	},
}

var establishedTemplates = []types.SectionTemplate{
	{
		Title: "Executive Summary",
		SubsectionPrompts: []string{
			"Summarize the business, its history, and market position",
			"State current financial performance headlines",
			"Describe the strategic objectives for the planning period",
			"Summarize the key initiatives and investments proposed",
		},
	},
	{
		Title: "Business Overview and Performance",
		SubsectionPrompts: []string{
			"Review performance against the previous plan",
			"Describe the current product and service portfolio",
			"Summarize revenue mix by product, segment, or region",
			"Identify what has driven or limited recent performance",
		},
	},
	{
		Title: "Market Position and Competitive Analysis",
		SubsectionPrompts: []string{
			"Assess current market share and how it has moved",
			"Analyze competitor strategies and new entrants",
			"Identify threats from substitutes or changing customer behavior",
			"Describe the durable advantages the business defends",
			"Summarize customer satisfaction and brand perception",
		},
	},
	{
		Title: "Strategic Initiatives",
		SubsectionPrompts: []string{
			"Define the top strategic priorities for the period",
			"Describe innovation or modernization programs",
			"Identify markets or lines to exit or de-emphasize",
			"Explain how initiatives reinforce the core business",
		},
	},
	{
		Title: "Operational Excellence",
		SubsectionPrompts: []string{
			"Identify efficiency and cost-reduction opportunities",
			"Describe technology and infrastructure upgrades",
			"Outline supplier and procurement optimization",
			"Describe sustainability and compliance commitments",
		},
	},
	{
		Title: "Organization and Talent",
		SubsectionPrompts: []string{
			"Review organizational structure fit for the strategy",
			"Describe succession planning for key roles",
			"Outline workforce development and retention programs",
			"Describe how performance is measured and rewarded",
		},
	},
	{
		Title: "Financial Review and Projections",
		SubsectionPrompts: []string{
			"Present historical financial performance",
			"Project revenue, margin, and cash flow for the period",
			"Describe capital allocation across initiatives",
			"Set financial targets and covenants to maintain",
			"Describe dividend, reinvestment, or debt strategy",
		},
	},
	{
		Title: "Risk and Resilience",
		SubsectionPrompts: []string{
			"Identify strategic, operational, and financial risks",
			"Describe the risk management framework in place",
			"Assess resilience to market downturns",
			"Describe insurance, hedging, and continuity arrangements",
		},
	},
	{
		Title: "Implementation Roadmap",
		SubsectionPrompts: []string{
			"Lay out the initiative timeline with owners",
			"Define the governance and review cadence",
			"Set the leading indicators tracked per initiative",
			"Describe how the plan adapts if assumptions break",
		},
	},
}
