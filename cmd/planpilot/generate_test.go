package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/internal/types"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAnswers_Valid(t *testing.T) {
	path := writeAnswersFile(t, `{
		"businessIdea": "a specialty coffee shop",
		"location": "Dubai",
		"stage": "idea, no customers yet"
	}`)

	answers, err := loadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, "a specialty coffee shop", answers[types.QuestionBusinessIdea])
	assert.Equal(t, "Dubai", answers[types.QuestionLocation])
}

func TestLoadAnswers_SchemaFailure(t *testing.T) {
	path := writeAnswersFile(t, `{"businessIdea": "bakery"}`)

	_, err := loadAnswers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := loadAnswers(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRenderDocument(t *testing.T) {
	doc := &types.BusinessPlanDocument{
		Title:    "Business Plan: coffee shop in Dubai",
		Location: "Dubai",
		Category: types.CategoryNewCompany,
		Sections: []types.GeneratedSection{
			{Title: "Executive Summary", Content: "A concise overview."},
			{Title: "Market Analysis", Content: "Error generating Market Analysis: upstream error", Failed: true},
		},
	}

	out := renderDocument(doc)
	assert.Contains(t, out, "# Business Plan: coffee shop in Dubai")
	assert.Contains(t, out, "## Executive Summary")
	assert.Contains(t, out, "A concise overview.")
	assert.Contains(t, out, "## Market Analysis")
	assert.Contains(t, out, "Error generating Market Analysis")
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	generateConfigPath = ""
	t.Cleanup(func() { generateConfigPath = "" })

	cfg, err := loadCLIConfig()
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Provider)
	assert.Equal(t, "logs/planpilot.log", cfg.LogPath)
}
