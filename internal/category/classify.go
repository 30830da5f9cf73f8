// Package category resolves a questionnaire stage answer into a business
// category and provides the static section templates for each category.
package category

import (
	"strings"

	"planpilot/internal/types"
)

// Classify maps the raw stage answer to exactly one category. The answer may
// contain several comma-separated stage tokens (multi-select); an
// "established" token wins over a "scaling" token, and anything else falls
// through to NewCompany. Total function: every input classifies.
func Classify(stageAnswer string) types.Category {
	for _, token := range strings.Split(stageAnswer, ",") {
		if isEstablishedToken(token) {
			return types.CategoryEstablished
		}
	}
	for _, token := range strings.Split(stageAnswer, ",") {
		if isScalingToken(token) {
			return types.CategoryScaleUp
		}
	}
	return types.CategoryNewCompany
}

func isEstablishedToken(token string) bool {
	return strings.Contains(normalize(token), "established")
}

func isScalingToken(token string) bool {
	t := normalize(token)
	return strings.Contains(t, "scaling") || strings.Contains(t, "scale")
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
