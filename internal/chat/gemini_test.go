package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeminiRequiresKey(t *testing.T) {
	g, err := NewGemini(context.Background(), "", "")
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewGeminiDefaultModel(t *testing.T) {
	g, err := NewGemini(context.Background(), "test-key", "")
	if err != nil {
		t.Skipf("genai client unavailable: %v", err)
	}
	assert.Equal(t, "gemini-2.0-flash", g.model)
}
