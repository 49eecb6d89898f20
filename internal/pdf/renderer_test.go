package pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formpdf/internal/model"
)

func sampleForm() model.DocumentForm {
	return model.DocumentForm{
		Nombre:   "Alexis",
		Apellido: "Piña",
		Edad:     "29",
		Telefono: "5581064181",
		Correo:   "alexis.pina@chelita.com.mx",
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(context.Background(), sampleForm())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, Signature))
	assert.Greater(t, len(out), 100)
}

func TestRender_MarkupSignificantValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "html tags", value: "<b>bold</b> & <i>"},
		{name: "pdf delimiters", value: `(unbalanced \ paren`},
		{name: "line breaks", value: "line one\r\nline two\tend"},
		{name: "outside code page", value: "漢字 ✓"},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := sampleForm()
			form.Nombre = tt.value

			out, err := r.Render(context.Background(), form)

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, Signature))
		})
	}
}

func TestRender_CustomTitle(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewRenderer(WithTitle("Custom Title"), WithClock(func() time.Time { return fixed }))

	out, err := r.Render(context.Background(), sampleForm())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, Signature))
}

func TestRender_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewRenderer().Render(ctx, sampleForm())

	assert.Nil(t, out)
	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrCodeCanceled, rerr.Code)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a b", escape("a\nb"))
	assert.Equal(t, "a b", escape("a\r\n\tb"))
	assert.Equal(t, "<b>&amp;", escape("<b>&amp;"))
	assert.Equal(t, "", escape(""))
}

func TestRenderError(t *testing.T) {
	cause := errors.New("boom")
	err := NewRenderError(ErrCodeRenderFailed, "render pdf", cause)

	assert.Equal(t, "render pdf: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "render pdf", NewRenderError(ErrCodeRenderFailed, "render pdf", nil).Error())
}
