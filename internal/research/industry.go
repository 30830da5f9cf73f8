package research

import "strings"

// industryByType maps derived business types to the industry label used in
// research prompts.
var industryByType = map[string]string{
	"coffee shop":        "food and beverage",
	"restaurant":         "food and beverage",
	"bakery":             "food and beverage",
	"food truck":         "food and beverage",
	"mobile app":         "technology",
	"software platform":  "technology",
	"online marketplace": "e-commerce",
	"online store":       "e-commerce",
	"retail store":       "retail",
	"salon":              "personal care",
	"fitness studio":     "health and fitness",
	"consulting firm":    "professional services",
	"delivery service":   "logistics",
}

// IndustryFor returns the industry label for a derived business type,
// falling back to a generic label when the type is unmapped.
func IndustryFor(businessType string) string {
	if industry, ok := industryByType[strings.ToLower(businessType)]; ok {
		return industry
	}
	return "general business"
}
