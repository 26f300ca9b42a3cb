package email

import (
	"testing"

	"happenly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render_welcome(t *testing.T) {
	data := &domain.WelcomeMessageEmailData{Email: "a<b>@example.com", UserID: "u1"}

	subject, html, text, err := NewTemplateRenderer().Render("welcome", data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Happenly", subject)
	assert.Contains(t, html, "a&lt;b&gt;@example.com")
	assert.Contains(t, text, "Hi a<b>@example.com,")
}

func TestTemplateRenderer_Render_unknown(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
