package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
	}{
		{"research.json", "research-new-company"},
		{"research.json", "research-scale-up"},
		{"research.json", "research-established"},
		{"sections.json", "generate-section"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("research.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "anything")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("research.json", "missing-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Research a {{.BusinessType}} in {{.Location}} serving the {{.Industry}} industry."

	result := Format(template, map[string]string{
		"BusinessType": "coffee shop",
		"Location":     "Dubai",
		"Industry":     "food and beverage",
	})

	assert.Equal(t, "Research a coffee shop in Dubai serving the food and beverage industry.", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestResearchPrompts_ContainPlaceholders(t *testing.T) {
	for _, key := range []string{"research-new-company", "research-scale-up", "research-established"} {
		prompt := MustGet("research.json", key)
		assert.True(t, strings.Contains(prompt, "{{.BusinessType}}"), key)
		assert.True(t, strings.Contains(prompt, "{{.Location}}"), key)
		assert.True(t, strings.Contains(prompt, "{{.Industry}}"), key)
	}
}

func TestClearCache(t *testing.T) {
	_, err := Get("research.json", "research-new-company")
	require.NoError(t, err)

	ClearCache()

	prompt, err := Get("research.json", "research-new-company")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
}
