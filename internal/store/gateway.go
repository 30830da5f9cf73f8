package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"planpilot/internal/retry"
	"planpilot/internal/types"
)

// Gateway normalizes persistence across the primary and fallback stores:
// validate, retry the primary with backoff, fall back once, and return the
// same PersistedRecord shape from whichever store accepted the write.
type Gateway struct {
	primary  PrimaryStore
	fallback FallbackStore
	policy   retry.Policy
	validate *validator.Validate
	log      *zap.Logger
}

// GatewayOption configures a Gateway
type GatewayOption func(*Gateway)

// WithRetryPolicy overrides the default retry policy
func WithRetryPolicy(policy retry.Policy) GatewayOption {
	return func(g *Gateway) { g.policy = policy }
}

// WithLogger attaches a logger
func WithLogger(log *zap.Logger) GatewayOption {
	return func(g *Gateway) { g.log = log }
}

// NewGateway creates the persistence gateway
func NewGateway(primary PrimaryStore, fallback FallbackStore, options ...GatewayOption) *Gateway {
	g := &Gateway{
		primary:  primary,
		fallback: fallback,
		policy:   retry.Default(),
		validate: validator.New(),
		log:      zap.NewNop(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// savePayload is the validated shape of a save request.
type savePayload struct {
	Title        string `validate:"required"`
	BusinessIdea string `validate:"required"`
	Location     string `validate:"required"`
	Category     string `validate:"required,oneof=NewCompany ScaleUp Established"`
}

// Save persists a document for a user. Missing required fields fail
// immediately with a ValidationError and no write attempt. The primary
// store is tried up to the policy's attempt count with backoff between
// attempts; if every attempt fails, a single fallback write is made. When
// the fallback also fails, the primary error is returned so the caller
// sees the root cause.
func (g *Gateway) Save(ctx context.Context, userID uuid.UUID, doc *types.BusinessPlanDocument) (*PersistedRecord, error) {
	title := doc.Title
	if title == "" {
		title = defaultTitle(doc)
	}

	payload := savePayload{
		Title:        title,
		BusinessIdea: doc.BusinessIdea,
		Location:     doc.Location,
		Category:     string(doc.Category),
	}
	if err := g.validate.Struct(payload); err != nil {
		return nil, toValidationError(err)
	}

	rec := &PersistedRecord{
		UserID:       userID,
		Title:        title,
		BusinessIdea: doc.BusinessIdea,
		Location:     doc.Location,
		Category:     doc.Category,
		Sections:     doc.Sections,
		Status:       StatusDraft,
		Version:      InitialVersion,
		Tags:         []string{},
	}

	var stored *PersistedRecord
	primaryErr := g.policy.Do(ctx, func(ctx context.Context) error {
		inserted, err := g.primary.Insert(ctx, rec)
		if err != nil {
			g.log.Warn("primary store write failed", zap.Error(err))
			return err
		}
		stored = inserted
		return nil
	})
	if primaryErr == nil {
		return stored, nil
	}

	g.log.Warn("primary store exhausted, using fallback store", zap.Error(primaryErr))

	fallbackRec, fallbackErr := g.fallback.Put(rec)
	if fallbackErr != nil {
		g.log.Error("fallback store also failed",
			zap.NamedError("primary_error", primaryErr),
			zap.NamedError("fallback_error", fallbackErr))
		return nil, fmt.Errorf("persistence failed: %w", primaryErr)
	}

	return fallbackRec, nil
}

// Load retrieves a persisted plan from whichever store holds it.
func (g *Gateway) Load(ctx context.Context, id string) (*PersistedRecord, error) {
	rec, err := g.primary.Get(ctx, id)
	if err != nil {
		g.log.Warn("primary store read failed, trying fallback", zap.Error(err))
	}
	if rec != nil {
		return rec, nil
	}

	if fallbackRec, found := g.fallback.Get(id); found {
		return fallbackRec, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("plan not found: %s", id)
}

func defaultTitle(doc *types.BusinessPlanDocument) string {
	if doc.BusinessIdea == "" {
		return ""
	}
	return fmt.Sprintf("%s - Business Plan", doc.BusinessIdea)
}

func toValidationError(err error) error {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		verr := &ValidationError{}
		for _, fe := range invalid {
			verr.Fields = append(verr.Fields, fe.Field())
		}
		return verr
	}
	return &ValidationError{Fields: []string{"unknown"}}
}
