package domain

// SectionSummary aggregates verdicts for one section. CorrectIDs and
// IncorrectIDs follow question declaration order; a question the examinee
// never touched appears in neither ("incorrect" means attempted and wrong).
type SectionSummary struct {
	CorrectIDs   []string `json:"correct_ids"`
	IncorrectIDs []string `json:"incorrect_ids"`
	Score        float64  `json:"score"`
	Total        float64  `json:"total"`
}

// ObjectiveSummary is the whole-quiz score view: both sections plus their
// sums. It is derived fresh from paper + sheet on every grading pass and is
// never stored state.
type ObjectiveSummary struct {
	Choice SectionSummary `json:"choice"`
	Fillin SectionSummary `json:"fillin"`
	Score  float64        `json:"score"`
	Total  float64        `json:"total"`
}
