package models

import "strings"

const (
	SkillsCap     = 40
	ExperienceCap = 35
	ProjectsCap   = 15
	ATSCap        = 10
)

type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// AnalysisInput is the validated, size-bounded pair sent upstream.
type AnalysisInput struct {
	ResumeText              string
	JobDescription          string
	ResumeTruncated         bool
	JobDescriptionTruncated bool
}

type AnalysisResult struct {
	OverallScore    float64         `json:"overallScore"`
	Rubric          Rubric          `json:"rubric"`
	MissingSkills   MissingSkills   `json:"missingSkills"`
	KeywordCoverage KeywordCoverage `json:"keywordCoverage"`
	TopFixes        []TopFix        `json:"topFixes"`
	BulletRewrites  []BulletRewrite `json:"bulletRewrites"`
	InterviewPrep   InterviewPrep   `json:"interviewPrep"`
	CoverLetter     CoverLetter     `json:"coverLetter"`
}

type Rubric struct {
	Skills     RubricItem `json:"skills"`
	Experience RubricItem `json:"experience"`
	Projects   RubricItem `json:"projects"`
	ATS        RubricItem `json:"ats"`
}

type RubricItem struct {
	Score    float64  `json:"score"`
	Max      float64  `json:"max"`
	Notes    string   `json:"notes"`
	Evidence []string `json:"evidence"`
}

type MissingSkills struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

type KeywordCoverage struct {
	Percent float64  `json:"percent"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

type TopFix struct {
	Fix    string `json:"fix"`
	Impact string `json:"impact"`
}

type BulletRewrite struct {
	Original string `json:"original"`
	Rewrite  string `json:"rewrite"`
	Why      string `json:"why"`
}

type InterviewPrep struct {
	Technical  []string `json:"technical"`
	Behavioral []string `json:"behavioral"`
	GapProbing []string `json:"gapProbing"`
}

type CoverLetter struct {
	Draft string `json:"draft"`
}

// Normalize repairs model output in place: scores are clamped to their caps,
// list fields are never nil and impacts are limited to high, medium or low.
// Content is otherwise passed through untouched.
func (r *AnalysisResult) Normalize() {
	r.OverallScore = clamp(r.OverallScore, 100)

	r.Rubric.Skills.normalize(SkillsCap)
	r.Rubric.Experience.normalize(ExperienceCap)
	r.Rubric.Projects.normalize(ProjectsCap)
	r.Rubric.ATS.normalize(ATSCap)

	r.MissingSkills.Required = nonNil(r.MissingSkills.Required)
	r.MissingSkills.Preferred = nonNil(r.MissingSkills.Preferred)

	r.KeywordCoverage.Percent = clamp(r.KeywordCoverage.Percent, 100)
	r.KeywordCoverage.Found = nonNil(r.KeywordCoverage.Found)
	r.KeywordCoverage.Missing = nonNil(r.KeywordCoverage.Missing)

	if r.TopFixes == nil {
		r.TopFixes = []TopFix{}
	}
	for i := range r.TopFixes {
		switch impact := strings.ToLower(strings.TrimSpace(r.TopFixes[i].Impact)); impact {
		case "high", "medium", "low":
			r.TopFixes[i].Impact = impact
		default:
			r.TopFixes[i].Impact = "medium"
		}
	}

	if r.BulletRewrites == nil {
		r.BulletRewrites = []BulletRewrite{}
	}

	r.InterviewPrep.Technical = nonNil(r.InterviewPrep.Technical)
	r.InterviewPrep.Behavioral = nonNil(r.InterviewPrep.Behavioral)
	r.InterviewPrep.GapProbing = nonNil(r.InterviewPrep.GapProbing)
}

func (i *RubricItem) normalize(limit float64) {
	i.Max = limit
	i.Score = clamp(i.Score, limit)
	i.Evidence = nonNil(i.Evidence)
}

func clamp(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
