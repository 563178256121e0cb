package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Gateway validates an incoming analysis request and bounds its size before
// anything is sent upstream.
type Gateway interface {
	Accept(req models.AnalyzeRequest) (*models.AnalysisInput, error)
}

type gateway struct {
	apiKey string
}

func NewGateway(apiKey string) Gateway {
	return &gateway{apiKey: apiKey}
}

// Accept implements Gateway.
func (g *gateway) Accept(req models.AnalyzeRequest) (*models.AnalysisInput, error) {
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		return nil, ErrMissingInput
	}

	if g.apiKey == "" {
		return nil, ErrMissingCredential
	}

	resume, resumeCut := Truncate(req.ResumeText, MaxResumeChars)
	jd, jdCut := Truncate(req.JobDescription, MaxJobDescriptionChars)

	return &models.AnalysisInput{
		ResumeText:              resume,
		JobDescription:          jd,
		ResumeTruncated:         resumeCut,
		JobDescriptionTruncated: jdCut,
	}, nil
}
