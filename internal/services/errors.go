package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrMissingInput      = errors.New("resumeText and jobDescription are required")
	ErrMissingCredential = errors.New("LLM API key is not configured")

	// ErrCoverLetterUnavailable marks an exhausted cover-letter fallback chain.
	// It never reaches the client; the fallback draft is used instead.
	ErrCoverLetterUnavailable = errors.New("no cover letter model produced a draft")

	errEmptyCompletion = errors.New("empty completion")
)

// UpstreamError is a non-2xx reply from the LLM API. Body is kept verbatim
// so it can be surfaced for diagnosis.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// checkUpstreamStatus passes 2xx responses through and consumes any other
// reply into an *UpstreamError.
func checkUpstreamStatus(res *http.Response) (*http.Response, error) {
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream error body: %w", err)
	}
	return nil, &UpstreamError{StatusCode: res.StatusCode, Body: string(body)}
}
