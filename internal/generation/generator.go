package generation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"planpilot/internal/llm"
	"planpilot/internal/prompts"
	"planpilot/internal/retry"
	"planpilot/internal/types"
)

// NoContentMarker is returned when the generation service answered
// successfully but produced no text.
const NoContentMarker = "No content was generated for this section."

// SectionContext carries everything one section prompt embeds.
type SectionContext struct {
	BusinessName string
	Category     types.Category
	Template     types.SectionTemplate
	Answers      types.AnswerSet
	Research     string
}

// Generator generates section content with bounded retry. Calls are strictly
// sequential per pipeline run; the generation service rate-limits requests.
type Generator struct {
	client llm.Client
	policy retry.Policy
	log    *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRetryPolicy overrides the default retry policy
func WithRetryPolicy(policy retry.Policy) Option {
	return func(g *Generator) { g.policy = policy }
}

// WithLogger attaches a logger
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// NewGenerator creates a section generator backed by a generation client
func NewGenerator(client llm.Client, options ...Option) *Generator {
	g := &Generator{
		client: client,
		policy: retry.Default(),
		log:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// GenerateSection builds the prompt for one section and calls the generation
// service, retrying per the policy. After retries are exhausted the last
// error is wrapped in an Error carrying the section title.
func (g *Generator) GenerateSection(ctx context.Context, sc SectionContext) (string, error) {
	prompt := buildSectionPrompt(sc)

	var content string
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		text, err := g.client.Generate(ctx, prompt)
		if err != nil {
			g.log.Warn("section generation attempt failed",
				zap.String("section", sc.Template.Title),
				zap.Error(err))
			return err
		}
		content = text
		return nil
	})
	if err != nil {
		return "", &Error{
			SectionTitle: sc.Template.Title,
			Message:      "generation failed",
			Cause:        err,
		}
	}

	if strings.TrimSpace(content) == "" {
		return NoContentMarker, nil
	}
	return content, nil
}

// buildSectionPrompt embeds the business name, category, subsection prompts,
// the serialized answer set, and the research briefing into one prompt.
func buildSectionPrompt(sc SectionContext) string {
	var promptList strings.Builder
	for i, p := range sc.Template.SubsectionPrompts {
		promptList.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
	}

	template := prompts.MustGet("sections.json", "generate-section")
	return prompts.Format(template, map[string]string{
		"BusinessName":      sc.BusinessName,
		"Category":          string(sc.Category),
		"SectionTitle":      sc.Template.Title,
		"SubsectionPrompts": promptList.String(),
		"Answers":           sc.Answers.Serialize(),
		"Research":          sc.Research,
	})
}
