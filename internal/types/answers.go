// Package types defines the shared data model for the plan generation pipeline.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known questionnaire keys the pipeline reads directly.
// The form subsystem may supply any number of additional keys; they are
// carried through into section prompts untouched.
const (
	QuestionBusinessIdea = "businessIdea"
	QuestionBusinessName = "businessName"
	QuestionLocation     = "location"
	QuestionStage        = "stage"
)

// AnswerSet maps question identifiers to free-text answers. Multi-select
// answers arrive as a single comma-separated string. The pipeline treats
// an AnswerSet as immutable input.
type AnswerSet map[string]string

// Get returns the answer for a key, or empty string if unanswered.
func (a AnswerSet) Get(key string) string {
	return a[key]
}

// Serialize renders the answer set as one "key: value" line per answer,
// sorted by key so the output is deterministic across runs. This is the
// form embedded into section generation prompts.
func (a AnswerSet) Serialize() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s: %s\n", k, a[k]))
	}
	return sb.String()
}
