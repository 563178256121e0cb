package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder(t *testing.T) {
	pb := NewPromptBuilder()

	scoring := pb.BuildScoringPrompt("RESUME-BODY", "JD-BODY")
	assert.Contains(t, scoring, "RESUME-BODY")
	assert.Contains(t, scoring, "JD-BODY")
	assert.Contains(t, scoring, "overallScore")

	letter := pb.BuildCoverLetterPrompt("RESUME-BODY", "JD-BODY")
	assert.Contains(t, letter, "RESUME-BODY")
	assert.Contains(t, letter, "JD-BODY")
	assert.Contains(t, letter, "[Company Name]")
}
