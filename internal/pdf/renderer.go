// Package pdf renders document forms into PDF files using a fixed template.
package pdf

import (
	"bytes"
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"

	"formpdf/internal/model"
)

// DefaultTitle is printed at the top of every document unless overridden.
const DefaultTitle = "Chelita Software - Fullstack Test"

// Error codes for rendering failures.
const (
	ErrCodeRenderFailed = "RENDER_FAILED"
	ErrCodeCanceled     = "RENDER_CANCELED"
)

// Signature is the prefix every rendered document starts with.
var Signature = []byte("%PDF")

// RenderError represents an error during PDF rendering.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new RenderError.
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// Renderer turns a form into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, form model.DocumentForm) ([]byte, error)
}

// Option configures a renderer.
type Option func(*fpdfRenderer)

// WithTitle overrides the document title. An empty title keeps the default.
func WithTitle(title string) Option {
	return func(r *fpdfRenderer) {
		if title != "" {
			r.title = title
		}
	}
}

// WithClock fixes the creation date written into the document metadata.
func WithClock(now func() time.Time) Option {
	return func(r *fpdfRenderer) {
		r.now = now
	}
}

// Layout in millimetres: US Letter with one inch margins.
const (
	margin      = 25.4
	titleSize   = 18
	titleHeight = 12
	titleGap    = 12
	bodySize    = 11
	lineHeight  = 6
	lineGap     = 10
	fontFamily  = "Helvetica"
)

type fpdfRenderer struct {
	title string
	now   func() time.Time
}

// NewRenderer returns a Renderer backed by fpdf core fonts.
func NewRenderer(opts ...Option) Renderer {
	r := &fpdfRenderer{title: DefaultTitle, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws a centered title followed by one labeled line per form field.
func (r *fpdfRenderer) Render(ctx context.Context, form model.DocumentForm) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeCanceled, "render canceled", err)
	}

	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle(r.title, true)
	doc.SetCreator("formpdf", true)
	doc.SetCreationDate(r.now())
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont(fontFamily, "B", titleSize)
	doc.CellFormat(0, titleHeight, tr(escape(r.title)), "", 1, "C", false, 0, "")
	doc.Ln(titleGap)

	for _, f := range form.Fields() {
		doc.SetFont(fontFamily, "B", bodySize)
		doc.Write(lineHeight, tr(f.Label+": "))
		doc.SetFont(fontFamily, "", bodySize)
		doc.Write(lineHeight, tr(escape(f.Value)))
		doc.Ln(lineGap)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "render pdf", err)
	}
	return buf.Bytes(), nil
}

// escape makes a value safe for the single-line layout: every run of control
// characters, including line breaks and tabs, becomes one space. PDF string
// delimiters are escaped by fpdf when the text is written.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inControl := false
	for _, r := range s {
		if unicode.IsControl(r) {
			if !inControl {
				b.WriteByte(' ')
			}
			inControl = true
			continue
		}
		inControl = false
		b.WriteRune(r)
	}
	return b.String()
}
