package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"formpdf/internal/codegen"
	"formpdf/internal/logger"
	"formpdf/internal/model"
	"formpdf/internal/pdf"
	"formpdf/internal/storage"
	"formpdf/internal/validation"
)

// DefaultMaxAttempts bounds how many codes Create draws before giving up on collisions.
const DefaultMaxAttempts = 5

var tracer = otel.Tracer("formpdf/internal/service")

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Create validates the form, renders it, and stores the PDF under a new code.
	// Nothing is stored when validation or rendering fails.
	Create(ctx context.Context, form model.DocumentForm) (*model.Document, error)

	// Fetch returns the stored PDF for code encoded as base64.
	Fetch(ctx context.Context, code string) (string, error)
}

// Option configures a DocumentService.
type Option func(*documentService)

// WithMaxAttempts sets the collision retry bound. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *documentService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithMetrics records document metrics on m.
func WithMetrics(m *Metrics) Option {
	return func(s *documentService) {
		s.metrics = m
	}
}

type documentService struct {
	store       storage.Storage
	renderer    pdf.Renderer
	gen         codegen.Generator
	maxAttempts int
	metrics     *Metrics
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, renderer pdf.Renderer, gen codegen.Generator, opts ...Option) DocumentService {
	s := &documentService{
		store:       store,
		renderer:    renderer,
		gen:         gen,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentService) Create(ctx context.Context, form model.DocumentForm) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Create", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if errs := validation.ValidateForm(form); len(errs) > 0 {
		span.SetStatus(codes.Error, "validation failed")
		return nil, &ValidationError{Fields: errs}
	}

	start := time.Now()
	content, err := s.renderer.Render(ctx, form)
	s.metrics.observeRender(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("render document: %w", err)
	}

	log := logger.FromContext(ctx)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "code generation failed")
			return nil, err
		}
		if s.store.Insert(code, content) {
			s.metrics.documentCreated()
			span.SetAttributes(
				attribute.String("document.code", code),
				attribute.Int("document.size", len(content)),
				attribute.Int("document.code_attempts", attempt),
			)
			return &model.Document{Code: code, Content: content}, nil
		}
		log.Warn("document code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}

	span.SetStatus(codes.Error, ErrCodeSpaceExhausted.Error())
	return nil, fmt.Errorf("%w (%d)", ErrCodeSpaceExhausted, s.maxAttempts)
}

func (s *documentService) Fetch(ctx context.Context, code string) (string, error) {
	_, span := tracer.Start(ctx, "DocumentService.Fetch", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if utf8.RuneCountInString(code) != codegen.Length {
		return "", ErrInvalidCode
	}
	encoded, ok := s.store.GetEncoded(code)
	if !ok {
		return "", ErrNotFound
	}
	span.SetAttributes(attribute.String("document.code", code))
	return encoded, nil
}
