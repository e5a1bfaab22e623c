package model

type Recommendation string

const (
	StrongHire   Recommendation = "Strong Hire"
	Hire         Recommendation = "Hire"
	NoHire       Recommendation = "No Hire"
	StrongNoHire Recommendation = "Strong No Hire"
)

// ScoringDetails is computed once, when a candidate completes the interview.
type ScoringDetails struct {
	OverallScore        int            `json:"overall_score"`
	TechnicalScore      int            `json:"technical_score"`
	CommunicationScore  int            `json:"communication_score"`
	ProblemSolvingScore int            `json:"problem_solving_score"`
	Strengths           []string       `json:"strengths"`
	Improvements        []string       `json:"improvements"`
	Recommendation      Recommendation `json:"recommendation"`
}
