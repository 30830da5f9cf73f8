// Package pipeline provides the high-level orchestration that turns a
// questionnaire answer set into an assembled business plan document.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"planpilot/internal/category"
	"planpilot/internal/generation"
	"planpilot/internal/types"
)

// Researcher is the research collaborator contract. Implemented by
// research.Client; tests substitute fakes.
type Researcher interface {
	Research(ctx context.Context, businessType, location string, cat types.Category) (string, error)
}

// SectionGenerator is the section generation contract. Implemented by
// generation.Generator; tests substitute fakes.
type SectionGenerator interface {
	GenerateSection(ctx context.Context, sc generation.SectionContext) (string, error)
}

// Service assembles business plan documents. One Service may serve
// concurrent runs; it holds no per-run state.
type Service struct {
	researcher Researcher
	sections   SectionGenerator
	log        *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger attaches a logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates the plan assembly service
func NewService(researcher Researcher, sections SectionGenerator, options ...Option) *Service {
	s := &Service{
		researcher: researcher,
		sections:   sections,
		log:        zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Generate runs the full assembly: classify, research once, then generate
// every section of the resolved category strictly in template order.
//
// Research is a hard dependency: its failure aborts the run before any
// section generation. Individual section failures are isolated instead;
// the failed section gets sentinel content and the run continues, so the
// document always carries the full section list for its category.
func (s *Service) Generate(ctx context.Context, answers types.AnswerSet) (*types.BusinessPlanDocument, error) {
	cat := category.Classify(answers.Get(types.QuestionStage))
	businessIdea := answers.Get(types.QuestionBusinessIdea)
	location := answers.Get(types.QuestionLocation)
	businessType := DeriveBusinessType(businessIdea)
	businessName := answers.Get(types.QuestionBusinessName)
	if businessName == "" {
		businessName = "the business"
	}

	s.log.Info("starting plan generation",
		zap.String("category", string(cat)),
		zap.String("business_type", businessType),
		zap.String("location", location))

	researchText, err := s.researcher.Research(ctx, businessType, location, cat)
	if err != nil {
		return nil, fmt.Errorf("research failed: %w", err)
	}

	templates := category.TemplatesFor(cat)
	sections := make([]types.GeneratedSection, 0, len(templates))

	// Sections are generated one at a time on purpose: the generation
	// service rate-limits requests, so no fan-out here.
	for _, tmpl := range templates {
		content, err := s.sections.GenerateSection(ctx, generation.SectionContext{
			BusinessName: businessName,
			Category:     cat,
			Template:     tmpl,
			Answers:      answers,
			Research:     researchText,
		})
		if err != nil {
			s.log.Warn("section failed, inserting sentinel content",
				zap.String("section", tmpl.Title),
				zap.Error(err))
			sections = append(sections, types.GeneratedSection{
				Title:   tmpl.Title,
				Content: fmt.Sprintf("%s %s: %v", types.FailedSectionPrefix, tmpl.Title, err),
				Failed:  true,
			})
			continue
		}
		sections = append(sections, types.GeneratedSection{
			Title:   tmpl.Title,
			Content: content,
		})
	}

	doc := &types.BusinessPlanDocument{
		Title:        defaultTitle(businessType, location),
		BusinessIdea: businessIdea,
		Location:     location,
		Category:     cat,
		Sections:     sections,
	}

	s.log.Info("plan generation complete",
		zap.Int("sections", len(doc.Sections)),
		zap.Strings("failed_sections", doc.FailedSections()))

	return doc, nil
}

func defaultTitle(businessType, location string) string {
	if location == "" {
		return fmt.Sprintf("Business Plan: %s", businessType)
	}
	return fmt.Sprintf("Business Plan: %s in %s", businessType, location)
}
