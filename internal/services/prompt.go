package services

import (
	"fmt"
)

const (
	scoringSystemPrompt     = "You are a strict ATS and hiring-manager resume evaluator. You reply with a single JSON object and nothing else."
	coverLetterSystemPrompt = "You are a careful career writer. You write only from the facts you are given and reply with the letter text only."
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt creates the rubric prompt for the structured scoring stage.
func (pb *PromptBuilder) BuildScoringPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Evaluate how well the RESUME matches the JOB DESCRIPTION.

SCORING RUBRIC (total 100 points):
1. skills (max 40) - Required and preferred skills from the job description that the resume demonstrates
2. experience (max 35) - Relevance, seniority and impact of work history for this role
3. projects (max 15) - Projects that show the skills the role needs
4. ats (max 10) - Keyword alignment, standard section headings and parseable formatting

RULES:
- overallScore must equal the sum of the four rubric scores.
- Every "evidence" entry MUST be a verbatim substring copied from the RESUME. Never paraphrase evidence.
- "missingSkills" MUST come only from the JOB DESCRIPTION. Never list a skill the job description does not mention.
- "keywordCoverage.percent" is the share (0-100) of important job-description keywords found in the resume.
- "topFixes" are the 3-5 most valuable changes, each tagged with impact "high", "medium" or "low".
- "bulletRewrites" take 2-4 weak resume bullets verbatim as "original" and rewrite them without inventing facts.
- "interviewPrep" lists 3-5 questions per category.
- Leave "coverLetter.draft" as an empty string.

Return ONLY a JSON object with exactly this shape:
{
  "overallScore": <0-100>,
  "rubric": {
    "skills":     {"score": <0-40>, "max": 40, "notes": "<string>", "evidence": ["<verbatim resume quote>"]},
    "experience": {"score": <0-35>, "max": 35, "notes": "<string>", "evidence": ["<verbatim resume quote>"]},
    "projects":   {"score": <0-15>, "max": 15, "notes": "<string>", "evidence": ["<verbatim resume quote>"]},
    "ats":        {"score": <0-10>, "max": 10, "notes": "<string>", "evidence": ["<verbatim resume quote>"]}
  },
  "missingSkills": {"required": ["<string>"], "preferred": ["<string>"]},
  "keywordCoverage": {"percent": <0-100>, "found": ["<string>"], "missing": ["<string>"]},
  "topFixes": [{"fix": "<string>", "impact": "high|medium|low"}],
  "bulletRewrites": [{"original": "<string>", "rewrite": "<string>", "why": "<string>"}],
  "interviewPrep": {"technical": ["<string>"], "behavioral": ["<string>"], "gapProbing": ["<string>"]},
  "coverLetter": {"draft": ""}
}

JOB DESCRIPTION:
%s

RESUME:
%s`, jobDescription, resumeText)
}

// BuildCoverLetterPrompt creates the free-text prompt for the cover-letter stage.
func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Write a cover letter for the candidate below, applying to the job below.

STRICT RULES:
- Length: 250 to 380 words.
- Use ONLY facts stated in the RESUME. Do not invent employers, titles, dates, metrics, degrees or skills.
- If the company name is not stated in the JOB DESCRIPTION, write [Company Name].
- If the role title is not stated in the JOB DESCRIPTION, write [Role Title].
- Address the letter to [Hiring Manager] unless a name is given in the JOB DESCRIPTION.
- Connect two or three concrete resume achievements to the most important job requirements.
- Plain text only. No markdown, no headings, no commentary before or after the letter.

JOB DESCRIPTION:
%s

RESUME:
%s`, jobDescription, resumeText)
}
