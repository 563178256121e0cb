package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// CoverLetterFallback is returned as the draft when no cover-letter model
// produced usable text.
const CoverLetterFallback = "Sorry, we couldn't generate a cover letter right now. Please try again in a moment."

const (
	scoringTemperature     = 0.2
	scoringMaxTokens       = 4096
	coverLetterTemperature = 0.7
	coverLetterMaxTokens   = 1200
)

type AnalyzerService interface {
	Analyze(ctx context.Context, input *models.AnalysisInput) (*models.AnalysisResult, error)
}

type analyzerService struct {
	completer         Completer
	promptBuilder     *PromptBuilder
	scoringModel      string
	coverLetterModels []string
	log               *logrus.Logger
}

func NewAnalyzerService(
	completer Completer,
	scoringModel string,
	coverLetterModels []string,
	log *logrus.Logger,
) AnalyzerService {
	return &analyzerService{
		completer:         completer,
		promptBuilder:     NewPromptBuilder(),
		scoringModel:      scoringModel,
		coverLetterModels: coverLetterModels,
		log:               log,
	}
}

// Analyze runs the scoring stage and then the cover-letter stage. A scoring
// failure fails the whole call; a cover-letter failure never does.
func (a *analyzerService) Analyze(ctx context.Context, input *models.AnalysisInput) (*models.AnalysisResult, error) {
	entry := a.log.WithFields(logrus.Fields{
		"request_id":     RequestIDFrom(ctx),
		"resume_chars":   utf8.RuneCountInString(input.ResumeText),
		"jd_chars":       utf8.RuneCountInString(input.JobDescription),
		"resume_trimmed": input.ResumeTruncated,
		"jd_trimmed":     input.JobDescriptionTruncated,
	})

	entry.Info("Starting analysis")
	start := time.Now()

	result, err := a.score(ctx, input, entry)
	if err != nil {
		return nil, err
	}

	result.CoverLetter.Draft = a.coverLetter(ctx, input, entry)

	entry.WithField("duration", time.Since(start)).Info("Analysis completed")
	return result, nil
}

func (a *analyzerService) score(ctx context.Context, input *models.AnalysisInput, entry *logrus.Entry) (*models.AnalysisResult, error) {
	prompt := a.promptBuilder.BuildScoringPrompt(input.ResumeText, input.JobDescription)
	entry.WithFields(logrus.Fields{
		"model":         a.scoringModel,
		"prompt_length": len(prompt),
	}).Debug("Sending scoring request")

	response, err := a.completer.Complete(ctx, CompletionRequest{
		Model:        a.scoringModel,
		SystemPrompt: scoringSystemPrompt,
		UserPrompt:   prompt,
		JSONMode:     true,
		Temperature:  scoringTemperature,
		MaxTokens:    scoringMaxTokens,
	})
	if err != nil {
		entry.WithError(err).Error("Scoring request failed")
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(extractJSON(response)), &result); err != nil {
		entry.WithError(err).WithField("response_length", len(response)).Error("Failed to parse scoring response")
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}
	result.Normalize()

	entry.WithField("overall_score", result.OverallScore).Info("Scoring completed")
	return &result, nil
}

func (a *analyzerService) coverLetter(ctx context.Context, input *models.AnalysisInput, entry *logrus.Entry) string {
	prompt := a.promptBuilder.BuildCoverLetterPrompt(input.ResumeText, input.JobDescription)

	draft, model, err := FirstSuccess(ctx, a.coverLetterModels, func(ctx context.Context, model string) (string, error) {
		text, err := a.completer.Complete(ctx, CompletionRequest{
			Model:        model,
			SystemPrompt: coverLetterSystemPrompt,
			UserPrompt:   prompt,
			Temperature:  coverLetterTemperature,
			MaxTokens:    coverLetterMaxTokens,
		})
		if err != nil {
			entry.WithError(err).WithField("model", model).Warn("Cover letter model failed, trying next")
			return "", err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return "", errEmptyCompletion
		}
		return text, nil
	})
	if err != nil {
		entry.WithError(fmt.Errorf("%w: %w", ErrCoverLetterUnavailable, err)).Warn("Using fallback cover letter")
		return CoverLetterFallback
	}

	entry.WithField("model", model).Info("Cover letter generated")
	return draft
}
