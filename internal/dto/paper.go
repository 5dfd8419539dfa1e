package dto

import (
	"encoding/json"

	"quizgrade/internal/domain"
)

// FlexString accepts either a JSON string or a JSON number, so a fill-in
// answer typed as 42 and one typed as "42" arrive the same way. Numbers are
// kept verbatim (json.Number) to avoid float formatting drift.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// ChoiceQuestionView is a choice question as shown to the examinee: the
// answer index never leaves the server.
type ChoiceQuestionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Weight  float64  `json:"weight,omitempty"`
}

// FillinQuestionView is a fill-in question as shown to the examinee: the
// answer rule never leaves the server.
type FillinQuestionView struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Weight float64 `json:"weight,omitempty"`
}

// PaperResponse represents a paper in the API response
type PaperResponse struct {
	ID      string               `json:"id"`
	Title   string               `json:"title"`
	Choices []ChoiceQuestionView `json:"choices"`
	Fillins []FillinQuestionView `json:"fillins"`
}

// NewPaperResponse strips answer rules from a paper for examinee delivery.
func NewPaperResponse(paper *domain.Paper) *PaperResponse {
	resp := &PaperResponse{
		ID:      paper.ID,
		Title:   paper.Title,
		Choices: make([]ChoiceQuestionView, 0, len(paper.Choices)),
		Fillins: make([]FillinQuestionView, 0, len(paper.Fillins)),
	}
	for _, q := range paper.Choices {
		resp.Choices = append(resp.Choices, ChoiceQuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
			Weight:  q.Weight,
		})
	}
	for _, q := range paper.Fillins {
		resp.Fillins = append(resp.Fillins, FillinQuestionView{
			ID:     q.ID,
			Text:   q.Text,
			Weight: q.Weight,
		})
	}
	return resp
}

// CreatePaperRequest carries a full, externally validated paper document.
type CreatePaperRequest struct {
	Title   string                  `json:"title"`
	Choices []domain.ChoiceQuestion `json:"choices"`
	Fillins []domain.FillinQuestion `json:"fillins"`
}

// ToDomain converts the request to a domain paper.
func (r *CreatePaperRequest) ToDomain() *domain.Paper {
	return &domain.Paper{
		Title:   r.Title,
		Choices: r.Choices,
		Fillins: r.Fillins,
	}
}

// CreatePaperResponse confirms an imported paper.
type CreatePaperResponse struct {
	ID string `json:"id"`
}

// AnswerSheetRequest is an examinee's response snapshot as sent by the
// client, for both draft saves and grading.
type AnswerSheetRequest struct {
	Choices map[string]*int       `json:"choices"`
	Fillins map[string]FlexString `json:"fillins"`
}

// ToDomain converts the request to a domain answer sheet.
func (r *AnswerSheetRequest) ToDomain() *domain.AnswerSheet {
	sheet := &domain.AnswerSheet{
		Choices: r.Choices,
		Fillins: make(map[string]string, len(r.Fillins)),
	}
	for id, v := range r.Fillins {
		sheet.Fillins[id] = string(v)
	}
	return sheet
}

// SectionSummaryResponse mirrors domain.SectionSummary on the wire.
type SectionSummaryResponse struct {
	CorrectIDs   []string `json:"correct_ids"`
	IncorrectIDs []string `json:"incorrect_ids"`
	Score        float64  `json:"score"`
	Total        float64  `json:"total"`
}

// SummaryResponse represents the graded objective summary in the API response
type SummaryResponse struct {
	Choice SectionSummaryResponse `json:"choice"`
	Fillin SectionSummaryResponse `json:"fillin"`
	Score  float64                `json:"score"`
	Total  float64                `json:"total"`
}

// NewSummaryResponse converts a domain summary for the wire.
func NewSummaryResponse(s domain.ObjectiveSummary) SummaryResponse {
	return SummaryResponse{
		Choice: SectionSummaryResponse(s.Choice),
		Fillin: SectionSummaryResponse(s.Fillin),
		Score:  s.Score,
		Total:  s.Total,
	}
}

// GradeResponse is the result of grading one answer sheet.
type GradeResponse struct {
	SubmissionID string          `json:"submission_id"`
	Summary      SummaryResponse `json:"summary"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
