package pipeline

import "strings"

// businessTypeKeywords maps idea keywords to the business type used in
// research prompts. Checked in order so more specific phrases win.
var businessTypeKeywords = []struct {
	keyword      string
	businessType string
}{
	{"food truck", "food truck"},
	{"coffee", "coffee shop"},
	{"cafe", "coffee shop"},
	{"café", "coffee shop"},
	{"bakery", "bakery"},
	{"restaurant", "restaurant"},
	{"marketplace", "online marketplace"},
	{"platform", "software platform"},
	{"saas", "software platform"},
	{"software", "software platform"},
	{"app", "mobile app"},
	{"e-commerce", "online store"},
	{"ecommerce", "online store"},
	{"online store", "online store"},
	{"online shop", "online store"},
	{"retail", "retail store"},
	{"shop", "retail store"},
	{"store", "retail store"},
	{"salon", "salon"},
	{"barber", "salon"},
	{"gym", "fitness studio"},
	{"fitness", "fitness studio"},
	{"yoga", "fitness studio"},
	{"consulting", "consulting firm"},
	{"agency", "consulting firm"},
	{"delivery", "delivery service"},
}

// defaultBusinessType is used when no keyword matches the idea text.
const defaultBusinessType = "business"

// DeriveBusinessType maps a free-text business idea to a coarse business
// type by keyword matching. Pure and total: unknown ideas fall back to the
// generic type.
func DeriveBusinessType(businessIdea string) string {
	idea := strings.ToLower(businessIdea)
	for _, entry := range businessTypeKeywords {
		if strings.Contains(idea, entry.keyword) {
			return entry.businessType
		}
	}
	return defaultBusinessType
}
