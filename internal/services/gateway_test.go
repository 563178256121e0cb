package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestGateway_Accept(t *testing.T) {
	t.Run("missing resume", func(t *testing.T) {
		_, err := NewGateway("key").Accept(models.AnalyzeRequest{JobDescription: "Go developer"})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("whitespace job description", func(t *testing.T) {
		_, err := NewGateway("key").Accept(models.AnalyzeRequest{ResumeText: "Engineer", JobDescription: " \n\t "})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("missing input wins over missing key", func(t *testing.T) {
		_, err := NewGateway("").Accept(models.AnalyzeRequest{})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewGateway("").Accept(models.AnalyzeRequest{ResumeText: "Engineer", JobDescription: "Go developer"})
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("passes short inputs through", func(t *testing.T) {
		input, err := NewGateway("key").Accept(models.AnalyzeRequest{ResumeText: "Engineer", JobDescription: "Go developer"})
		require.NoError(t, err)
		assert.Equal(t, "Engineer", input.ResumeText)
		assert.Equal(t, "Go developer", input.JobDescription)
		assert.False(t, input.ResumeTruncated)
		assert.False(t, input.JobDescriptionTruncated)
	})

	t.Run("bounds oversized inputs", func(t *testing.T) {
		input, err := NewGateway("key").Accept(models.AnalyzeRequest{
			ResumeText:     strings.Repeat("r", MaxResumeChars+100),
			JobDescription: strings.Repeat("j", MaxJobDescriptionChars+1),
		})
		require.NoError(t, err)

		assert.True(t, input.ResumeTruncated)
		assert.True(t, input.JobDescriptionTruncated)
		assert.Equal(t, strings.Repeat("r", MaxResumeChars)+TruncationMarker, input.ResumeText)
		assert.Equal(t, strings.Repeat("j", MaxJobDescriptionChars)+TruncationMarker, input.JobDescription)
	})
}
